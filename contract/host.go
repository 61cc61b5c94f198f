package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Env carries the invocation context the execution host supplies for every
// call: who is calling, how much value they attached, the current block time
// and the engine's own on-chain address.
type Env struct {
	Sender   common.Address
	Value    *uint256.Int // attached payment, already escrowed by the host
	Time     uint64       // block timestamp, unix seconds
	Contract common.Address
}

// Host is the execution environment the engine runs inside. Every operation
// executes atomically and fully serialized from the engine's point of view;
// the host is the only party that may interleave a Transfer back into the
// engine (reentrancy), which is why withdrawal zeroes balances first.
type Host interface {
	Env() Env

	StateGet(key string) ([]byte, bool)
	StateSet(key string, value []byte)
	StateDelete(key string)

	// Transfer moves value out of the contract irreversibly. A non-nil
	// error means the recipient rejected the funds and nothing moved.
	Transfer(to common.Address, amount *uint256.Int) error

	// SelfBalance reports the residual funds held by the contract.
	SelfBalance() *uint256.Int

	Log(msg string)
}
