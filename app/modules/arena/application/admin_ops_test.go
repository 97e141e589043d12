package arenaservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenadb "github.com/arcade-league/arena/app/modules/arena/infrastructure/repositories"
)

func validParams() InitializeParams {
	return InitializeParams{
		EntryFee:     100,
		PrizeRatio:   70,
		Distribution: arenadomain.Distribution{50, 30, 20},
		Policy:       arenadomain.PolicyClaim,
		OwnerAccount: "owner",
		TokenPool:    "pool",
	}
}

func TestInitializeStoresConfig(t *testing.T) {
	h := newTestHarness()

	require.NoError(t, h.svc.Initialize(context.Background(), validParams()))

	require.NotNil(t, h.repo.Stored)
	assert.Equal(t, int64(100), h.repo.Stored.EntryFee)
	assert.Equal(t, int16(70), h.repo.Stored.PrizeRatio)
	assert.Equal(t, arenadomain.PolicyClaim, h.repo.Stored.Policy)
	assert.Empty(t, h.repo.Stored.Entries)
	assert.Zero(t, h.repo.Stored.PrizePool)
	assert.Zero(t, h.repo.Stored.CommissionPool)
}

func TestInitializeRejectsBadConfig(t *testing.T) {
	h := newTestHarness()

	params := validParams()
	params.PrizeRatio = 100
	err := h.svc.Initialize(context.Background(), params)
	assert.ErrorIs(t, err, arenadomain.ErrInvalidConfig)

	params = validParams()
	params.Distribution = arenadomain.Distribution{50, 30, 30}
	err = h.svc.Initialize(context.Background(), params)
	assert.ErrorIs(t, err, arenadomain.ErrInvalidConfig)

	// Nothing was persisted on either rejection.
	assert.Nil(t, h.repo.Stored)
}

func TestInitializeRejectsReinitialization(t *testing.T) {
	h := newTestHarness()

	require.NoError(t, h.svc.Initialize(context.Background(), validParams()))
	err := h.svc.Initialize(context.Background(), validParams())
	assert.ErrorIs(t, err, arenadb.ErrLeaderboardExists)
}

func TestSetSecretKeyStoresRotation(t *testing.T) {
	h := newTestHarness()
	require.NoError(t, h.svc.Initialize(context.Background(), validParams()))

	var secret arenadomain.Secret
	copy(secret[:], "rotated-secret-rotated-secret-xx")
	require.NoError(t, h.svc.SetSecretKey(context.Background(), secret))

	assert.Equal(t, secret[:], h.repo.Stored.SecretKey)
}

func TestSetTokenPool(t *testing.T) {
	h := newTestHarness()
	require.NoError(t, h.svc.Initialize(context.Background(), validParams()))

	require.NoError(t, h.svc.SetTokenPool(context.Background(), "new-pool"))
	assert.Equal(t, "new-pool", h.repo.Stored.TokenPool)
}

func TestWithdrawCommission(t *testing.T) {
	h := newTestHarness()
	require.NoError(t, h.svc.Initialize(context.Background(), validParams()))

	// Accrue commission via one paid start.
	h.ledger.Credit("alice", 100)
	_, err := h.svc.StartGame(context.Background(), "alice", "Alice")
	require.NoError(t, err)
	require.Equal(t, int64(30), h.repo.Stored.CommissionPool)

	require.NoError(t, h.svc.WithdrawCommission(context.Background(), 20))
	assert.Equal(t, int64(10), h.repo.Stored.CommissionPool)
	assert.Equal(t, uint64(20), h.ledger.Balance("owner"))
}

func TestWithdrawCommissionBounds(t *testing.T) {
	h := newTestHarness()
	require.NoError(t, h.svc.Initialize(context.Background(), validParams()))

	err := h.svc.WithdrawCommission(context.Background(), 1)
	if !errors.Is(err, arenadomain.ErrInsufficientCommission) {
		t.Fatalf("expected ErrInsufficientCommission, got %v", err)
	}
}
