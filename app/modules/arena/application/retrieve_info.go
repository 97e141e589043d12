package arenaservice

import (
	"context"
	"fmt"
)

// GetLeaderboard returns a read-only snapshot of the current standings and
// pools.
func (s *ArenaService) GetLeaderboard(ctx context.Context) (*LeaderboardSnapshot, error) {
	lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	board := lb.Board()
	return &LeaderboardSnapshot{
		PrizePool:      board.PrizePool,
		CommissionPool: board.CommissionPool,
		Policy:         string(lb.Policy),
		Entries:        board.Entries,
	}, nil
}

// GetRank returns the player's zero-based position on the board.
func (s *ArenaService) GetRank(ctx context.Context, playerID string) (int, error) {
	lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return lb.Board().Rank(playerID)
}
