package contract

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Event is the common structure for all emitted notifications: a type plus
// flat key/value attributes, logged through the host as JSON.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

func emitEvent(h Host, eventType string, attributes map[string]string) {
	b, err := json.Marshal(Event{Type: eventType, Attributes: attributes})
	if err != nil {
		return
	}
	h.Log(string(b))
}

func emitCommitted(h Host, id common.Hash, player1, player2 common.Address, bet *uint256.Int) {
	emitEvent(h, "committed", map[string]string{
		"id":      id.Hex(),
		"player1": player1.Hex(),
		"player2": player2.Hex(),
		"bet":     bet.Dec(),
	})
}

func emitCounterMoved(h Host, id common.Hash, player common.Address, move Move, bet *uint256.Int) {
	emitEvent(h, "counterMoved", map[string]string{
		"id":     id.Hex(),
		"player": player.Hex(),
		"move":   move.String(),
		"bet":    bet.Dec(),
	})
}

func emitRevealed(h Host, id common.Hash, player common.Address, move Move) {
	emitEvent(h, "revealed", map[string]string{
		"id":     id.Hex(),
		"player": player.Hex(),
		"move":   move.String(),
	})
}

func emitGameWon(h Host, id common.Hash, winner common.Address, pot *uint256.Int) {
	emitEvent(h, "gameWon", map[string]string{
		"id":     id.Hex(),
		"winner": winner.Hex(),
		"amount": pot.Dec(),
	})
}

func emitGameDraw(h Host, id common.Hash, each *uint256.Int) {
	emitEvent(h, "gameDraw", map[string]string{
		"id":   id.Hex(),
		"each": each.Dec(),
	})
}

func emitReclaimed(h Host, id common.Hash, player common.Address, amount *uint256.Int) {
	emitEvent(h, "reclaimed", map[string]string{
		"id":     id.Hex(),
		"player": player.Hex(),
		"amount": amount.Dec(),
	})
}

func emitTimeoutClaimed(h Host, id common.Hash, player common.Address, amount *uint256.Int) {
	emitEvent(h, "timeoutClaimed", map[string]string{
		"id":     id.Hex(),
		"player": player.Hex(),
		"amount": amount.Dec(),
	})
}

func emitWithdrawn(h Host, player common.Address, amount *uint256.Int) {
	emitEvent(h, "withdrawn", map[string]string{
		"player": player.Hex(),
		"amount": amount.Dec(),
	})
}

func emitGateInitialized(h Host, owner common.Address) {
	emitEvent(h, "gateInitialized", map[string]string{"owner": owner.Hex()})
}

func emitGatePaused(h Host, owner common.Address) {
	emitEvent(h, "gatePaused", map[string]string{"owner": owner.Hex()})
}

func emitGateResumed(h Host, owner common.Address) {
	emitEvent(h, "gateResumed", map[string]string{"owner": owner.Hex()})
}

func emitGateKilled(h Host, owner common.Address) {
	emitEvent(h, "gateKilled", map[string]string{"owner": owner.Hex()})
}

func emitGateDrained(h Host, owner common.Address, amount *uint256.Int) {
	emitEvent(h, "gateDrained", map[string]string{
		"owner":  owner.Hex(),
		"amount": amount.Dec(),
	})
}
