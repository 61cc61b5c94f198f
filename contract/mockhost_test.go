package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// mockHost is an in-memory execution host for tests: a state map, a
// scriptable environment and a transfer recorder with failure injection.
type mockHost struct {
	state    map[string][]byte
	env      Env
	balance  *uint256.Int
	out      []transferCall
	transfer func(to common.Address, amount *uint256.Int) error
	logs     []string
}

type transferCall struct {
	to     common.Address
	amount *uint256.Int
}

var _ Host = (*mockHost)(nil)

var (
	engineAddr = common.HexToAddress("0x00000000000000000000000000000000000000EE")
	alice      = common.HexToAddress("0x00000000000000000000000000000000000000A1")
	bob        = common.HexToAddress("0x00000000000000000000000000000000000000B2")
	carol      = common.HexToAddress("0x00000000000000000000000000000000000000C3")
)

func newMockHost() *mockHost {
	return &mockHost{
		state:   make(map[string][]byte),
		balance: uint256.NewInt(0),
		env: Env{
			Sender:   alice,
			Value:    uint256.NewInt(0),
			Time:     1_000,
			Contract: engineAddr,
		},
	}
}

// call positions the env for the next operation: sender, attached value and
// block time. Attached value is added to the contract balance the way the
// host escrows payments before invoking the engine.
func (h *mockHost) call(sender common.Address, value uint64, time uint64) {
	h.env.Sender = sender
	h.env.Value = uint256.NewInt(value)
	h.env.Time = time
	h.balance = new(uint256.Int).Add(h.balance, h.env.Value)
}

func (h *mockHost) Env() Env { return h.env }

func (h *mockHost) StateGet(key string) ([]byte, bool) {
	v, ok := h.state[key]
	return v, ok
}

func (h *mockHost) StateSet(key string, value []byte) {
	h.state[key] = value
}

func (h *mockHost) StateDelete(key string) {
	delete(h.state, key)
}

func (h *mockHost) Transfer(to common.Address, amount *uint256.Int) error {
	if h.transfer != nil {
		if err := h.transfer(to, amount); err != nil {
			return err
		}
	}
	h.out = append(h.out, transferCall{to: to, amount: amount.Clone()})
	h.balance = new(uint256.Int).Sub(h.balance, amount)
	return nil
}

func (h *mockHost) SelfBalance() *uint256.Int { return h.balance.Clone() }

func (h *mockHost) Log(msg string) { h.logs = append(h.logs, msg) }

// paidTo sums everything transferred out to one address.
func (h *mockHost) paidTo(addr common.Address) *uint256.Int {
	total := uint256.NewInt(0)
	for _, tc := range h.out {
		if tc.to == addr {
			total.Add(total, tc.amount)
		}
	}
	return total
}
