package contract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyFullGameByPayload(t *testing.T) {
	h := newMockHost()
	e := New(h)

	h.call(alice, 0, 1_000)
	out, err := e.Apply("g_hash", "1|"+secret.Hex())
	require.NoError(t, err)
	require.NotNil(t, out)
	id := *out

	h.call(alice, 5, 1_000)
	out, err = e.Apply("g_commit", id+"|"+bob.Hex())
	require.NoError(t, err)
	require.Equal(t, id, *out)

	h.call(bob, 5, 1_100)
	_, err = e.Apply("g_move", id+"|2")
	require.NoError(t, err)

	h.call(carol, 0, 1_100)
	out, err = e.Apply("g_get", id)
	require.NoError(t, err)
	var rec GameRecord
	require.NoError(t, json.Unmarshal([]byte(*out), &rec))
	require.Equal(t, PhaseCounterMoved, rec.Phase)
	require.Equal(t, Paper, rec.Move2)

	h.call(alice, 0, 1_200)
	_, err = e.Apply("g_reveal", id+"|1|"+secret.Hex())
	require.NoError(t, err)

	h.call(bob, 0, 1_300)
	out, err = e.Apply("g_withdraw", "")
	require.NoError(t, err)
	require.Equal(t, "10", *out)
}

func TestApplyReclaimAndClaimByPayload(t *testing.T) {
	h := newMockHost()
	e := New(h)

	id := commitAs(t, e, h, alice, Rock, 5, bob)

	h.call(alice, 0, 1_000+WaitPeriod+1)
	_, err := e.Apply("g_reclaim", id.Hex())
	require.NoError(t, err)

	id = commitAs(t, e, h, alice, Rock, 5, bob)
	h.call(bob, 5, 2_000)
	require.NoError(t, e.Move(id, Paper))
	h.call(bob, 0, 2_000+WaitPeriod+1)
	_, err = e.Apply("g_claim", id.Hex())
	require.NoError(t, err)
}

func TestApplyRejectsMalformedPayloads(t *testing.T) {
	h := newMockHost()
	e := New(h)
	h.call(alice, 5, 1_000)

	_, err := e.Apply("g_commit", "not-hex")
	require.ErrorIs(t, err, ErrInvalidCommitment)

	_, err = e.Apply("g_commit", "0x1234") // wrong digest length
	require.ErrorIs(t, err, ErrInvalidCommitment)

	_, err = e.Apply("g_hash", "rock|"+secret.Hex())
	require.ErrorIs(t, err, ErrInvalidMove)

	_, err = e.Apply("g_withdraw", "unexpected")
	require.Error(t, err)

	_, err = e.Apply("g_reveal", secret.Hex()+"|1|"+secret.Hex()+"|extra")
	require.Error(t, err)

	_, err = e.Apply("g_destroy", "")
	require.Error(t, err)
}

func TestApplyAdminOps(t *testing.T) {
	h := newMockHost()
	e := New(h)

	h.call(alice, 0, 1_000)
	_, err := e.Apply("admin_init", "")
	require.NoError(t, err)
	_, err = e.Apply("admin_pause", "")
	require.NoError(t, err)

	h.call(bob, 5, 1_100)
	_, err = e.Apply("g_commit", secret.Hex())
	require.ErrorIs(t, err, ErrStopped)

	h.call(alice, 0, 1_200)
	_, err = e.Apply("admin_resume", "")
	require.NoError(t, err)
	_, err = e.Apply("admin_kill", "")
	require.NoError(t, err)
	_, err = e.Apply("admin_drain", "")
	require.NoError(t, err)
}
