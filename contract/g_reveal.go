package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Reveal discloses player1's move and secret. Recomputing the commitment
// against the game identifier is the whole proof: no stored copy of the move
// exists anywhere. A valid reveal resolves the game immediately.
func (e *Engine) Reveal(gameID common.Hash, move Move, secret common.Hash) error {
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
	want, err := MakeCommitment(env.Contract, move, secret)
	if err != nil {
		return err
	}
	if want != gameID {
		return ErrCommitmentMismatch
	}
	if rec.Phase != PhaseCounterMoved {
		return ErrNoCounterMove
	}

	emitRevealed(e.host, gameID, rec.Player1, move)
	e.resolve(gameID, rec, move)
	return nil
}

// resolve settles an awaiting-reveal game: winner takes the full pot, a draw
// returns each stake. The record is reset in the same operation so the
// identifier is immediately reusable.
func (e *Engine) resolve(gameID common.Hash, rec *GameRecord, move1 Move) {
	pot := new(uint256.Int).Add(rec.Deposit, rec.Deposit)

	switch resolveOutcome(move1, rec.Move2) {
	case OutcomePlayer1:
		e.ledger.credit(rec.Player1, pot)
		e.games.reset(gameID)
		emitGameWon(e.host, gameID, rec.Player1, pot)
	case OutcomePlayer2:
		e.ledger.credit(rec.Player2, pot)
		e.games.reset(gameID)
		emitGameWon(e.host, gameID, rec.Player2, pot)
	default:
		e.ledger.credit(rec.Player1, rec.Deposit)
		e.ledger.credit(rec.Player2, rec.Deposit)
		e.games.reset(gameID)
		emitGameDraw(e.host, gameID, rec.Deposit)
	}
}
