package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// WaitPeriod is how long each side gets to act before the opposing timeout
// path opens, in seconds. Rolled forward on every state-advancing transition.
const WaitPeriod uint64 = 600

// Move is a player's choice. None is a sentinel for "not yet set", never a
// playable move.
type Move uint8

const (
	None     Move = 0
	Rock     Move = 1
	Paper    Move = 2
	Scissors Move = 3
)

// Valid reports whether m is one of the three playable moves.
func (m Move) Valid() bool { return m >= Rock && m <= Scissors }

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "none"
}

// Phase is the explicit lifecycle tag of a game record. An absent record is
// the Empty state; records are deleted, not flagged, when a game resolves.
type Phase uint8

const (
	PhaseCommitted    Phase = 1 // player1 committed, awaiting counter-move
	PhaseCounterMoved Phase = 2 // player2 moved, awaiting reveal
)

// GameRecord is one active game, keyed in state by its commitment. The
// commitment doubles as game identifier and as the cryptographic proof the
// reveal is checked against.
type GameRecord struct {
	Phase      Phase          `json:"phase"`
	Player1    common.Address `json:"player1"`
	Player2    common.Address `json:"player2"` // zero until bound in open games
	Move2      Move           `json:"move2"`
	Deposit    *uint256.Int   `json:"deposit"` // per-side stake, fixed at commit
	Expiration uint64         `json:"expiration"`
}

// Outcome of a resolved game from player1's perspective.
type Outcome uint8

const (
	OutcomeDraw    Outcome = 0
	OutcomePlayer1 Outcome = 1
	OutcomePlayer2 Outcome = 2
)

// resolveOutcome applies the cyclic beats-relation: rock beats scissors,
// paper beats rock, scissors beats paper, identical moves draw. Both moves
// must already be validated.
func resolveOutcome(move1, move2 Move) Outcome {
	switch (int(move1) - int(move2) + 3) % 3 {
	case 0:
		return OutcomeDraw
	case 1:
		return OutcomePlayer1
	default:
		return OutcomePlayer2
	}
}
