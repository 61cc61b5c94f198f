package contract

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestMakeCommitmentDeterministic(t *testing.T) {
	secret := common.HexToHash("0xdeadbeef")
	a, err := MakeCommitment(engineAddr, Rock, secret)
	require.NoError(t, err)
	b, err := MakeCommitment(engineAddr, Rock, secret)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.NotEqual(t, common.Hash{}, a)
}

func TestMakeCommitmentRejectsInvalidMoves(t *testing.T) {
	secret := common.HexToHash("0x01")
	for _, m := range []Move{None, Move(4), Move(200)} {
		_, err := MakeCommitment(engineAddr, m, secret)
		require.ErrorIs(t, err, ErrInvalidMove)
	}
}

func TestMakeCommitmentSaltedByEngineIdentity(t *testing.T) {
	secret := common.HexToHash("0x02")
	a, err := MakeCommitment(engineAddr, Paper, secret)
	require.NoError(t, err)
	b, err := MakeCommitment(alice, Paper, secret)
	require.NoError(t, err)
	require.NotEqual(t, a, b, "same reveal on another deployment must not replay")
}

func TestMakeCommitmentInjective(t *testing.T) {
	secrets := []common.Hash{
		common.HexToHash("0x00"),
		common.HexToHash("0x01"),
		common.HexToHash("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	}
	seen := make(map[common.Hash]string)
	for _, m := range []Move{Rock, Paper, Scissors} {
		for _, s := range secrets {
			c, err := MakeCommitment(engineAddr, m, s)
			require.NoError(t, err)
			prev, dup := seen[c]
			require.False(t, dup, "collision between %s/%s and %s", m, s.Hex(), prev)
			seen[c] = m.String() + "/" + s.Hex()
		}
	}
}

func TestGenerateCommitmentUsesHostIdentity(t *testing.T) {
	h := newMockHost()
	e := New(h)
	secret := common.HexToHash("0x03")

	got, err := e.GenerateCommitment(Scissors, secret)
	require.NoError(t, err)

	want, err := MakeCommitment(engineAddr, Scissors, secret)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Empty(t, h.logs, "pure query must not emit")
}
