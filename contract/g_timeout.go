package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Timeouts are lazy: there is no background timer, only a deadline comparison
// made when an interested party calls in. Two independent escape hatches
// cover the two ways a counterparty can go silent.

// Reclaim returns player1's stake when no counter-move ever arrived and the
// deadline passed. Strictly unreachable once player2 has moved.
func (e *Engine) Reclaim(gameID common.Hash) error {
	if err := e.gate.checkRunning(); err != nil {
		return err
	}
	rec, err := e.games.load(gameID)
	if err != nil {
		return err
	}

	env := e.host.Env()
	if env.Sender != rec.Player1 {
		return ErrIncorrectPlayer
	}
	if rec.Phase != PhaseCommitted {
		return ErrCounterMoveMade
	}
	if env.Time <= rec.Expiration {
		return ErrNotYetExpired
	}

	e.ledger.credit(rec.Player1, rec.Deposit)
	e.games.reset(gameID)
	emitReclaimed(e.host, gameID, rec.Player1, rec.Deposit)
	return nil
}

// ClaimTimeout awards player2 the full pot when player1 never revealed.
// Without this, a committer who sees a losing counter-move could refuse to
// reveal forever and freeze both stakes.
func (e *Engine) ClaimTimeout(gameID common.Hash) error {
	if err := e.gate.checkRunning(); err != nil {
		return err
	}
	rec, err := e.games.load(gameID)
	if err != nil {
		return err
	}

	if rec.Phase != PhaseCounterMoved {
		return ErrNoCounterMove
	}
	env := e.host.Env()
	if env.Sender != rec.Player2 {
		return ErrIncorrectPlayer
	}
	if env.Time <= rec.Expiration {
		return ErrNotYetExpired
	}

	pot := new(uint256.Int).Add(rec.Deposit, rec.Deposit)
	e.ledger.credit(rec.Player2, pot)
	e.games.reset(gameID)
	emitTimeoutClaimed(e.host, gameID, rec.Player2, pot)
	return nil
}
