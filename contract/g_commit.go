package contract

import (
	"github.com/ethereum/go-ethereum/common"
)

// Commit opens a game under the given commitment, which becomes the game
// identifier. The attached payment is the per-side wager. A zero counterparty
// leaves the game open for anyone except the committer to counter-move.
func (e *Engine) Commit(commitment common.Hash, counterparty common.Address) (common.Hash, error) {
	if err := e.gate.checkRunning(); err != nil {
		return common.Hash{}, err
	}
	if commitment == (common.Hash{}) {
		return common.Hash{}, ErrInvalidCommitment
	}
	if e.games.active(commitment) {
		return common.Hash{}, ErrGameIDUsed
	}

	env := e.host.Env()
	if env.Value == nil || env.Value.IsZero() {
		return common.Hash{}, ErrDepositRequired
	}
	if counterparty == env.Sender {
		return common.Hash{}, ErrSamePlayer
	}

	rec := &GameRecord{
		Phase:      PhaseCommitted,
		Player1:    env.Sender,
		Player2:    counterparty,
		Move2:      None,
		Deposit:    env.Value.Clone(),
		Expiration: env.Time + WaitPeriod,
	}
	e.games.save(commitment, rec)

	emitCommitted(e.host, commitment, rec.Player1, rec.Player2, rec.Deposit)
	return commitment, nil
}
