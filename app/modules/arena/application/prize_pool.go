package arenaservice

import (
	"context"
	"fmt"

	arenaevents "github.com/arcade-league/arena/app/modules/arena/events"
)

// AddToPrizePool credits a sponsor contribution to the prize pool, unrelated
// to session starts. The transfer-in happens first; the credit is purely
// additive.
func (s *ArenaService) AddToPrizePool(ctx context.Context, contributor string, amount uint64) error {
	return s.serviceWrapper("AddToPrizePool", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}

		if err := s.Ledger.Transfer(ctx, contributor, lb.TokenPool, amount); err != nil {
			s.logger.ErrorContext(ctx, "Prize pool top-up transfer failed", "contributor", contributor, "error", err)
			return transferErr(err)
		}

		board := lb.Board()
		board.PrizePool += amount
		lb.SetBoard(board)

		if err := s.ArenaDB.UpdateLeaderboard(ctx, lb); err != nil {
			return fmt.Errorf("failed to store prize pool top-up: %w", err)
		}

		s.logger.InfoContext(ctx, "Prize pool topped up", "contributor", contributor, "amount", amount, "prize_pool", board.PrizePool)

		s.publish(ctx, arenaevents.PrizePoolToppedUpSubject, arenaevents.PrizePoolToppedUpPayload{
			Contributor: contributor,
			Amount:      amount,
			PrizePool:   board.PrizePool,
		})
		return nil
	})
}
