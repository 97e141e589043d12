package arenaservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenaevents "github.com/arcade-league/arena/app/modules/arena/events"
)

func startedHarness(t *testing.T, keyVerified bool) *testHarness {
	t.Helper()

	h := newTestHarness()
	params := validParams()
	params.KeyVerified = keyVerified
	require.NoError(t, h.svc.Initialize(context.Background(), params))

	if keyVerified {
		var secret arenadomain.Secret
		copy(secret[:], "0123456789abcdef0123456789abcdef")
		require.NoError(t, h.svc.SetSecretKey(context.Background(), secret))
	}

	h.ledger.Credit("alice", 1000)
	_, err := h.svc.StartGame(context.Background(), "alice", "Alice")
	require.NoError(t, err)
	return h
}

func TestSubmitScoreLandsOnLeaderboard(t *testing.T) {
	h := startedHarness(t, false)
	h.clock.Advance(60)

	result, err := h.svc.SubmitScore(context.Background(), "alice", 42, nil)
	require.NoError(t, err)

	require.NotNil(t, result.Rank)
	assert.Equal(t, 0, *result.Rank)

	require.Len(t, h.repo.Stored.Entries, 1)
	assert.Equal(t, "alice", h.repo.Stored.Entries[0].PlayerID)
	assert.Equal(t, uint32(42), h.repo.Stored.Entries[0].Score)
	assert.True(t, h.repo.Sessions["alice"].Completed)

	assert.Len(t, h.pub.Published[arenaevents.ScoreLoggedSubject], 1)
}

func TestSubmitScoreWithoutSession(t *testing.T) {
	h := newTestHarness()
	require.NoError(t, h.svc.Initialize(context.Background(), validParams()))

	_, err := h.svc.SubmitScore(context.Background(), "ghost", 1, nil)
	assert.ErrorIs(t, err, arenadomain.ErrSessionNotStarted)
}

func TestSubmitScoreExpiryBeatsValidKey(t *testing.T) {
	h := startedHarness(t, true)

	key := arenadomain.SessionKey{}
	copy(key[:], h.repo.Sessions["alice"].SessionKey)

	h.clock.Advance(arenadomain.SessionWindowSeconds + 1)
	_, err := h.svc.SubmitScore(context.Background(), "alice", 42, &key)
	assert.ErrorIs(t, err, arenadomain.ErrSessionExpired)

	// Expiry is terminal even though the call failed.
	assert.True(t, h.repo.Sessions["alice"].Completed)
	assert.Empty(t, h.repo.Stored.Entries)

	// A retry still reports expiry: the window check runs before the
	// completion check, so the terminal marking never surfaces here.
	_, err = h.svc.SubmitScore(context.Background(), "alice", 42, &key)
	assert.ErrorIs(t, err, arenadomain.ErrSessionExpired)
}

func TestSubmitScoreRejectsForgedKey(t *testing.T) {
	h := startedHarness(t, true)
	h.clock.Advance(10)

	forged := arenadomain.SessionKey{}
	copy(forged[:], h.repo.Sessions["alice"].SessionKey)
	forged[0] ^= 0xff

	_, err := h.svc.SubmitScore(context.Background(), "alice", 42, &forged)
	assert.ErrorIs(t, err, arenadomain.ErrInvalidSessionKey)
	assert.True(t, h.repo.Sessions["alice"].Completed)
	assert.Empty(t, h.repo.Stored.Entries)
}

func TestSubmitScoreAcceptsDerivedKey(t *testing.T) {
	h := startedHarness(t, true)
	h.clock.Advance(10)

	key := arenadomain.SessionKey{}
	copy(key[:], h.repo.Sessions["alice"].SessionKey)

	result, err := h.svc.SubmitScore(context.Background(), "alice", 42, &key)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), result.Score)
}

func TestSubmitScoreSingleUse(t *testing.T) {
	h := startedHarness(t, false)

	_, err := h.svc.SubmitScore(context.Background(), "alice", 42, nil)
	require.NoError(t, err)

	_, err = h.svc.SubmitScore(context.Background(), "alice", 99, nil)
	assert.ErrorIs(t, err, arenadomain.ErrScoreAlreadyLogged)

	// The leaderboard was mutated exactly once.
	require.Len(t, h.repo.Stored.Entries, 1)
	assert.Equal(t, uint32(42), h.repo.Stored.Entries[0].Score)
}
