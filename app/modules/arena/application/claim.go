package arenaservice

import (
	"context"
	"fmt"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenaevents "github.com/arcade-league/arena/app/modules/arena/events"
)

// ClaimPrize pays the caller their per-rank share of the live prize pool.
// Only ranks 0..2 are eligible, and each entry pays out once: the claimed
// flag is checked before transfer and never cleared. The pool itself is not
// decremented, so a later top-up raises the share of winners who have not
// claimed yet.
func (s *ArenaService) ClaimPrize(ctx context.Context, playerID string) (*ClaimResult, error) {
	var result *ClaimResult

	err := s.serviceWrapper("ClaimPrize", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}
		if lb.Policy != arenadomain.PolicyClaim {
			return arenadomain.ErrWrongPrizePolicy
		}
		cfg := lb.Config()

		board := lb.Board()
		rank, err := board.Rank(playerID)
		if err != nil {
			return err
		}
		if rank >= arenadomain.PrizeRanks {
			return arenadomain.ErrNotEligibleForPrize
		}
		if board.Entries[rank].Claimed {
			return arenadomain.ErrPrizeAlreadyClaimed
		}

		amount := arenadomain.ClaimAmount(board.PrizePool, rank, cfg.Distribution)

		if err := s.Ledger.AuthorityTransfer(ctx, lb.TokenPool, playerID, amount); err != nil {
			s.logger.ErrorContext(ctx, "Prize payout transfer failed", "player_id", playerID, "error", err)
			return transferErr(err)
		}

		board.Entries[rank].Claimed = true
		lb.SetBoard(board)
		if err := s.ArenaDB.UpdateLeaderboard(ctx, lb); err != nil {
			return fmt.Errorf("failed to store claim: %w", err)
		}

		s.logger.InfoContext(ctx, "Prize claimed", "player_id", playerID, "rank", rank, "amount", amount)

		s.publish(ctx, arenaevents.PrizeClaimedSubject, arenaevents.PrizeClaimedPayload{
			PlayerID: playerID,
			Rank:     rank,
			Amount:   amount,
		})

		result = &ClaimResult{PlayerID: playerID, Rank: rank, Amount: amount}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
