package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// MakeCommitment binds a move and a secret nonce to a fixed-size digest,
// salted with the engine's own address so the same (move, secret) pair sent
// to a different deployment yields a different commitment. The digest is both
// the game identifier and the proof checked at reveal time.
func MakeCommitment(engine common.Address, move Move, secret common.Hash) (common.Hash, error) {
	if !move.Valid() {
		return common.Hash{}, ErrInvalidMove
	}
	digest := crypto.Keccak256(engine.Bytes(), []byte{byte(move)}, secret.Bytes())
	return common.BytesToHash(digest), nil
}

// GenerateCommitment is the pure query entry point: it lets a party verify
// locally which commitment they should submit before paying. No state is
// read or written.
func (e *Engine) GenerateCommitment(move Move, secret common.Hash) (common.Hash, error) {
	return MakeCommitment(e.host.Env().Contract, move, secret)
}
