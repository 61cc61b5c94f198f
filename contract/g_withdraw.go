package contract

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Withdraw pays out the caller's whole accumulated balance. The balance is
// zeroed before the transfer primitive runs: the primitive may hand control
// to arbitrary caller code, and a reentrant Withdraw must observe zero. If
// the transfer reports failure the zeroing is undone so funds stay
// recoverable; nothing is ever silently dropped.
func (e *Engine) Withdraw() (*uint256.Int, error) {
	if err := e.gate.checkNotKilled(); err != nil {
		return nil, err
	}

	sender := e.host.Env().Sender
	if e.ledger.balance(sender).IsZero() {
		return nil, ErrNoFunds
	}

	amount := e.ledger.zero(sender)
	emitWithdrawn(e.host, sender, amount)

	if err := e.host.Transfer(sender, amount); err != nil {
		e.ledger.credit(sender, amount)
		return nil, errors.WithMessage(ErrTransferFailed, err.Error())
	}
	return amount, nil
}
