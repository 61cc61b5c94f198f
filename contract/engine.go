package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Engine is the commit-reveal game engine: a registry of games keyed by
// commitment, a pending-withdrawal ledger, and the administrative gate, all
// persisted through the host's serialized state.
type Engine struct {
	host   Host
	games  *registry
	ledger *ledger
	gate   *gate
}

// New wires the engine to its execution host.
func New(host Host) *Engine {
	return &Engine{
		host:   host,
		games:  &registry{host: host},
		ledger: &ledger{host: host},
		gate:   &gate{host: host},
	}
}

// GetGame is a read-only query for the record under an identifier.
func (e *Engine) GetGame(id common.Hash) (*GameRecord, error) {
	return e.games.load(id)
}

// Balance is a read-only query for an address's withdrawable funds.
func (e *Engine) Balance(addr common.Address) *uint256.Int {
	return e.ledger.balance(addr)
}
