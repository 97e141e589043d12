package arenadb

import "context"

// Repository is the persistence boundary for the arena engine. Operations
// are read-modify-write: the service loads the aggregate, mutates it under
// its own serialization, and stores it back.
type Repository interface {
	GetActiveLeaderboard(ctx context.Context) (*Leaderboard, error)
	CreateLeaderboard(ctx context.Context, lb *Leaderboard) (*Leaderboard, error)
	UpdateLeaderboard(ctx context.Context, lb *Leaderboard) error

	GetSession(ctx context.Context, playerID string) (*GameSession, error)
	UpsertSession(ctx context.Context, session *GameSession) error
}
