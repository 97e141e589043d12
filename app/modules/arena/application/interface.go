package arenaservice

import (
	"context"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
)

// Service is the callable surface of the arena engine.
type Service interface {
	Initialize(ctx context.Context, params InitializeParams) error
	SetSecretKey(ctx context.Context, newSecret arenadomain.Secret) error
	SetTokenPool(ctx context.Context, tokenPool string) error
	WithdrawCommission(ctx context.Context, amount uint64) error

	StartGame(ctx context.Context, playerID, displayName string) (*StartGameResult, error)
	SubmitScore(ctx context.Context, playerID string, score uint32, key *arenadomain.SessionKey) (*SubmitScoreResult, error)

	ClaimPrize(ctx context.Context, playerID string) (*ClaimResult, error)
	SettleRound(ctx context.Context) (*SettleResult, error)
	AddToPrizePool(ctx context.Context, contributor string, amount uint64) error

	GetLeaderboard(ctx context.Context) (*LeaderboardSnapshot, error)
	GetRank(ctx context.Context, playerID string) (int, error)
}
