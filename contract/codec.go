package contract

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// codecVersion increments when the storage encoding changes. Decoding aborts
// on anything else so incompatible state is never misread.
const codecVersion uint8 = 1

// encodeRecord serializes a game record into the compact on-chain layout:
//
//	version | phase | move2 | player1 | p2flag [player2] | depLen depBytes | expiration
func encodeRecord(rec *GameRecord) []byte {
	dep := rec.Deposit.Bytes()
	out := make([]byte, 0, 3+common.AddressLength*2+2+len(dep)+8)

	out = append(out, codecVersion)
	out = append(out, byte(rec.Phase))
	out = append(out, byte(rec.Move2))
	out = append(out, rec.Player1.Bytes()...)

	if rec.Player2 != (common.Address{}) {
		out = append(out, 1)
		out = append(out, rec.Player2.Bytes()...)
	} else {
		out = append(out, 0)
	}

	out = append(out, byte(len(dep)))
	out = append(out, dep...)

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], rec.Expiration)
	out = append(out, ts[:]...)
	return out
}

func decodeRecord(b []byte) (*GameRecord, error) {
	r := &rd{b: b}
	if v := r.u8(); r.err == nil && v != codecVersion {
		return nil, errors.Errorf("unsupported record version %d", v)
	}

	rec := &GameRecord{}
	rec.Phase = Phase(r.u8())
	rec.Move2 = Move(r.u8())
	rec.Player1 = common.BytesToAddress(r.bytes(common.AddressLength))
	if r.u8() == 1 {
		rec.Player2 = common.BytesToAddress(r.bytes(common.AddressLength))
	}
	rec.Deposit = new(uint256.Int).SetBytes(r.bytes(int(r.u8())))
	rec.Expiration = r.u64()

	if err := r.mustEnd(); err != nil {
		return nil, err
	}
	return rec, nil
}

// gateState is the persisted halt/pause switch: owner plus two flags.
type gateState struct {
	Owner   common.Address
	Stopped bool
	Killed  bool
}

func encodeGate(st gateState) []byte {
	out := make([]byte, 0, 2+common.AddressLength)
	out = append(out, codecVersion)
	var flags byte
	if st.Stopped {
		flags |= 1
	}
	if st.Killed {
		flags |= 2
	}
	out = append(out, flags)
	out = append(out, st.Owner.Bytes()...)
	return out
}

func decodeGate(b []byte) (gateState, error) {
	r := &rd{b: b}
	if v := r.u8(); r.err == nil && v != codecVersion {
		return gateState{}, errors.Errorf("unsupported gate version %d", v)
	}
	flags := r.u8()
	st := gateState{
		Stopped: flags&1 != 0,
		Killed:  flags&2 != 0,
		Owner:   common.BytesToAddress(r.bytes(common.AddressLength)),
	}
	if err := r.mustEnd(); err != nil {
		return gateState{}, err
	}
	return st, nil
}

// rd is a bounds-checked binary reader. The first overflow latches into err
// and every later read returns zero values, so callers check once at the end.
type rd struct {
	b   []byte
	i   int
	err error
}

func (r *rd) need(n int) bool {
	if r.err != nil {
		return false
	}
	if r.i+n > len(r.b) {
		r.err = errors.Errorf("decode overflow at byte %d", r.i)
		return false
	}
	return true
}

func (r *rd) u8() byte {
	if !r.need(1) {
		return 0
	}
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u64() uint64 {
	if !r.need(8) {
		return 0
	}
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

func (r *rd) bytes(n int) []byte {
	if !r.need(n) {
		return nil
	}
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

// mustEnd verifies the reader consumed the buffer exactly.
func (r *rd) mustEnd() error {
	if r.err != nil {
		return r.err
	}
	if r.i != len(r.b) {
		return errors.Errorf("trailing bytes: %d unread", len(r.b)-r.i)
	}
	return nil
}
