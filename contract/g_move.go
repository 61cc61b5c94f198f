package contract

import (
	"github.com/ethereum/go-ethereum/common"
)

// Move records player2's open counter-move against an active game. The
// payment must match the committed deposit exactly, and the deadline restarts
// so it now protects player1's reveal window. In an open game the first
// eligible caller is bound as player2.
func (e *Engine) Move(gameID common.Hash, move Move) error {
	if err := e.gate.checkRunning(); err != nil {
		return err
	}
	rec, err := e.games.load(gameID)
	if err != nil {
		return err
	}

	env := e.host.Env()
	if env.Sender == rec.Player1 {
		return ErrIncorrectPlayer
	}
	if rec.Player2 != (common.Address{}) && env.Sender != rec.Player2 {
		return ErrIncorrectPlayer
	}
	if rec.Phase != PhaseCommitted {
		return ErrAlreadyMoved
	}
	if !move.Valid() {
		return ErrInvalidMove
	}
	if env.Value == nil || !env.Value.Eq(rec.Deposit) {
		return ErrDepositMismatch
	}

	rec.Player2 = env.Sender
	rec.Move2 = move
	rec.Phase = PhaseCounterMoved
	rec.Expiration = env.Time + WaitPeriod
	e.games.save(gameID, rec)

	emitCounterMoved(e.host, gameID, rec.Player2, move, rec.Deposit)
	return nil
}
