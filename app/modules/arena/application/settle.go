package arenaservice

import (
	"context"
	"fmt"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenaevents "github.com/arcade-league/arena/app/modules/arena/events"
)

// SettleRound runs the end-of-round settlement: pays each ranked winner their
// share, rolls undistributed shares over to the pool owner when fewer than
// three players scored, then clears the entries and zeroes the prize pool.
// The commission pool is untouched. All transfers precede the local state
// commit; a transfer failure aborts with the leaderboard unchanged.
func (s *ArenaService) SettleRound(ctx context.Context) (*SettleResult, error) {
	var result *SettleResult

	err := s.serviceWrapper("SettleRound", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}
		if lb.Policy != arenadomain.PolicySettle {
			return arenadomain.ErrWrongPrizePolicy
		}
		cfg := lb.Config()

		board := lb.Board()
		winners, rollover := arenadomain.SettlePayouts(board, cfg.Distribution)

		for _, w := range winners {
			if err := s.Ledger.AuthorityTransfer(ctx, lb.TokenPool, w.PlayerID, w.Amount); err != nil {
				s.logger.ErrorContext(ctx, "Settlement payout failed", "player_id", w.PlayerID, "error", err)
				return transferErr(err)
			}
		}
		if rollover > 0 {
			if err := s.Ledger.AuthorityTransfer(ctx, lb.TokenPool, lb.OwnerAccount, rollover); err != nil {
				s.logger.ErrorContext(ctx, "Settlement rollover failed", "error", err)
				return transferErr(err)
			}
		}

		// Empty slice, not nil: the entries column is notnull jsonb.
		board.Entries = []arenadomain.Entry{}
		board.PrizePool = 0
		lb.SetBoard(board)

		if err := s.ArenaDB.UpdateLeaderboard(ctx, lb); err != nil {
			return fmt.Errorf("failed to store settled round: %w", err)
		}

		s.logger.InfoContext(ctx, "Round settled", "winners", len(winners), "rollover", rollover)

		payouts := make([]arenaevents.SettledPayout, len(winners))
		for i, w := range winners {
			payouts[i] = arenaevents.SettledPayout{PlayerID: w.PlayerID, Amount: w.Amount}
		}
		s.publish(ctx, arenaevents.RoundSettledSubject, arenaevents.RoundSettledPayload{
			Payouts:  payouts,
			Rollover: rollover,
		})

		result = &SettleResult{Payouts: winners, Rollover: rollover}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
