package contract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Payload dispatch surface. The host invokes operations by name with a
// pipe-separated payload of hex-encoded fields; this layer parses and routes
// to the typed entry points. Results come back as a string pointer, nil when
// an operation has nothing to return.

// Apply dispatches one operation. Payload fields per op:
//
//	g_hash      move|secret
//	g_commit    commitment[|counterparty]
//	g_move      gameId|move
//	g_reveal    gameId|move|secret
//	g_reclaim   gameId
//	g_claim     gameId
//	g_withdraw  (empty)
//	g_get       gameId
//	admin_*     (empty)
func (e *Engine) Apply(op string, payload string) (*string, error) {
	in := payload
	switch op {
	case "g_hash":
		move, err := parseMove(nextField(&in))
		if err != nil {
			return nil, err
		}
		secret, err := parseHash(nextField(&in))
		if err != nil {
			return nil, err
		}
		if err := noMoreFields(in); err != nil {
			return nil, err
		}
		id, err := e.GenerateCommitment(move, secret)
		if err != nil {
			return nil, err
		}
		return strPtr(id.Hex()), nil

	case "g_commit":
		commitment, err := parseHash(nextField(&in))
		if err != nil {
			return nil, err
		}
		var counterparty common.Address
		if in != "" {
			counterparty, err = parseAddress(nextField(&in))
			if err != nil {
				return nil, err
			}
		}
		if err := noMoreFields(in); err != nil {
			return nil, err
		}
		id, err := e.Commit(commitment, counterparty)
		if err != nil {
			return nil, err
		}
		return strPtr(id.Hex()), nil

	case "g_move":
		gameID, err := parseHash(nextField(&in))
		if err != nil {
			return nil, err
		}
		move, err := parseMove(nextField(&in))
		if err != nil {
			return nil, err
		}
		if err := noMoreFields(in); err != nil {
			return nil, err
		}
		return nil, e.Move(gameID, move)

	case "g_reveal":
		gameID, err := parseHash(nextField(&in))
		if err != nil {
			return nil, err
		}
		move, err := parseMove(nextField(&in))
		if err != nil {
			return nil, err
		}
		secret, err := parseHash(nextField(&in))
		if err != nil {
			return nil, err
		}
		if err := noMoreFields(in); err != nil {
			return nil, err
		}
		return nil, e.Reveal(gameID, move, secret)

	case "g_reclaim":
		gameID, err := parseHash(nextField(&in))
		if err != nil {
			return nil, err
		}
		if err := noMoreFields(in); err != nil {
			return nil, err
		}
		return nil, e.Reclaim(gameID)

	case "g_claim":
		gameID, err := parseHash(nextField(&in))
		if err != nil {
			return nil, err
		}
		if err := noMoreFields(in); err != nil {
			return nil, err
		}
		return nil, e.ClaimTimeout(gameID)

	case "g_withdraw":
		if err := noMoreFields(in); err != nil {
			return nil, err
		}
		amount, err := e.Withdraw()
		if err != nil {
			return nil, err
		}
		return strPtr(amount.Dec()), nil

	case "g_get":
		gameID, err := parseHash(nextField(&in))
		if err != nil {
			return nil, err
		}
		if err := noMoreFields(in); err != nil {
			return nil, err
		}
		rec, err := e.GetGame(gameID)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return nil, errors.Wrap(err, "encode game")
		}
		return strPtr(string(b)), nil

	case "admin_init":
		return nil, e.Init()
	case "admin_pause":
		return nil, e.Pause()
	case "admin_resume":
		return nil, e.Resume()
	case "admin_kill":
		return nil, e.Kill()
	case "admin_drain":
		return nil, e.Drain()
	}
	return nil, errors.Errorf("unknown operation %q", op)
}

// nextField consumes up to the next '|' separator.
func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

func noMoreFields(s string) error {
	if s != "" {
		return errors.New("too many arguments")
	}
	return nil
}

func parseMove(s string) (Move, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return None, ErrInvalidMove
	}
	return Move(n), nil
}

func parseHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, ErrInvalidCommitment
	}
	return common.BytesToHash(b), nil
}

func parseAddress(s string) (common.Address, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.AddressLength {
		return common.Address{}, errors.Errorf("invalid address %q", s)
	}
	return common.BytesToAddress(b), nil
}

func strPtr(s string) *string { return &s }
