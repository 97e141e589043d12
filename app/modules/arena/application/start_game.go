package arenaservice

import (
	"context"
	"errors"
	"fmt"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenaevents "github.com/arcade-league/arena/app/modules/arena/events"
	arenadb "github.com/arcade-league/arena/app/modules/arena/infrastructure/repositories"
)

// StartGame opens a timed session for the player: validates the display name,
// rejects a second live session, collects the entry fee, credits the pools,
// and derives the anti-cheat key on key-verified leaderboards.
//
// The fee transfer is the last fallible step before local state commits, so a
// ledger failure leaves pools and session untouched.
func (s *ArenaService) StartGame(ctx context.Context, playerID, displayName string) (*StartGameResult, error) {
	var result *StartGameResult

	err := s.serviceWrapper("StartGame", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}
		cfg := lb.Config()

		existing, err := s.ArenaDB.GetSession(ctx, playerID)
		if err != nil && !errors.Is(err, arenadb.ErrSessionNotFound) {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if existing != nil && !existing.Completed {
			s.logger.WarnContext(ctx, "Rejected second live session", "player_id", playerID)
			return arenadomain.ErrSessionAlreadyActive
		}

		now := s.clock.Now().Unix()
		session, err := arenadomain.NewSession(playerID, displayName, now, cfg.KeyVerified, cfg.Secret)
		if err != nil {
			return err
		}

		if err := s.Ledger.Transfer(ctx, playerID, lb.TokenPool, cfg.EntryFee); err != nil {
			s.logger.ErrorContext(ctx, "Entry fee transfer failed", "player_id", playerID, "error", err)
			return transferErr(err)
		}

		board := lb.Board()
		board.CreditEntryFee(cfg.EntryFee, cfg.PrizeRatio)
		lb.SetBoard(board)

		if err := s.ArenaDB.UpdateLeaderboard(ctx, lb); err != nil {
			return fmt.Errorf("failed to store pool credit: %w", err)
		}
		if err := s.ArenaDB.UpsertSession(ctx, arenadb.SessionModel(session)); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}

		s.logger.InfoContext(ctx, "Game session started",
			"player_id", playerID,
			"start_time", now,
			"prize_pool", board.PrizePool,
		)

		s.publish(ctx, arenaevents.GameStartedSubject, arenaevents.GameStartedPayload{
			PlayerID:    playerID,
			DisplayName: displayName,
			StartTime:   now,
			EntryFee:    cfg.EntryFee,
			PrizePool:   board.PrizePool,
		})

		result = &StartGameResult{
			PlayerID:    playerID,
			DisplayName: displayName,
			StartedAt:   now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
