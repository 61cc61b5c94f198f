package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// ledger holds per-address pending-withdrawal balances. It is credited only
// by the resolution and timeout paths and debited only by withdraw; winnings
// across concurrent games accumulate into one balance per address.
type ledger struct {
	host Host
}

func balanceKey(addr common.Address) string { return "w_" + addr.Hex() }

func (l *ledger) balance(addr common.Address) *uint256.Int {
	raw, ok := l.host.StateGet(balanceKey(addr))
	if !ok {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).SetBytes(raw)
}

// credit adds amount to the address's withdrawable balance. Escrowed funds
// are bounded by the contract's own balance, so the sum cannot overflow.
func (l *ledger) credit(addr common.Address, amount *uint256.Int) {
	sum := new(uint256.Int).Add(l.balance(addr), amount)
	l.host.StateSet(balanceKey(addr), sum.Bytes())
}

// zero clears the address's balance and returns what it held. Withdrawal
// must call this before any transfer so a reentrant call observes zero.
func (l *ledger) zero(addr common.Address) *uint256.Int {
	bal := l.balance(addr)
	l.host.StateDelete(balanceKey(addr))
	return bal
}
