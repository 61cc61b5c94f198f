package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// registry owns creation, mutation and reset of game records. A record that
// is absent from state is a free slot: the same commitment may start a fresh
// game once the previous one fully resolved.
type registry struct {
	host Host
}

func gameKey(id common.Hash) string { return "g_" + id.Hex() }

// active reports whether a record currently occupies the identifier.
func (r *registry) active(id common.Hash) bool {
	_, ok := r.host.StateGet(gameKey(id))
	return ok
}

func (r *registry) load(id common.Hash) (*GameRecord, error) {
	raw, ok := r.host.StateGet(gameKey(id))
	if !ok {
		return nil, ErrGameNotFound
	}
	rec, err := decodeRecord(raw)
	if err != nil {
		return nil, errors.Wrap(err, "game record")
	}
	return rec, nil
}

func (r *registry) save(id common.Hash, rec *GameRecord) {
	r.host.StateSet(gameKey(id), encodeRecord(rec))
}

// reset frees the identifier. All terminal transitions land here so records
// are immediately reusable with no stale fields left behind.
func (r *registry) reset(id common.Hash) {
	r.host.StateDelete(gameKey(id))
}
