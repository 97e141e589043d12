package arenaservice

import (
	"context"
	"errors"
	"fmt"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenaevents "github.com/arcade-league/arena/app/modules/arena/events"
	arenadb "github.com/arcade-league/arena/app/modules/arena/infrastructure/repositories"
)

// SubmitScore closes the player's session with a score. Expiry is evaluated
// before the key and completion checks; an expired or key-rejected session is
// persisted as completed even though the call fails, so it cannot be retried.
func (s *ArenaService) SubmitScore(ctx context.Context, playerID string, score uint32, key *arenadomain.SessionKey) (*SubmitScoreResult, error) {
	var result *SubmitScoreResult

	err := s.serviceWrapper("SubmitScore", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}

		record, err := s.ArenaDB.GetSession(ctx, playerID)
		if err != nil {
			if errors.Is(err, arenadb.ErrSessionNotFound) {
				return arenadomain.ErrSessionNotStarted
			}
			return fmt.Errorf("failed to load session: %w", err)
		}
		session := record.Session()

		if err := session.Submit(s.clock.Now().Unix(), key); err != nil {
			// Terminal marking survives the failure: expiry and key
			// rejection both complete the session to block retries.
			if session.Completed && !record.Completed {
				record.Completed = true
				if storeErr := s.ArenaDB.UpsertSession(ctx, record); storeErr != nil {
					s.logger.ErrorContext(ctx, "Failed to persist terminal session", "player_id", playerID, "error", storeErr)
				}
			}
			s.logger.WarnContext(ctx, "Score submission rejected", "player_id", playerID, "error", err)
			return err
		}

		board := lb.Board()
		board.Insert(arenadomain.Entry{
			PlayerID:    session.PlayerID,
			Score:       score,
			DisplayName: session.DisplayName,
		})
		lb.SetBoard(board)

		record.Completed = true
		if err := s.ArenaDB.UpdateLeaderboard(ctx, lb); err != nil {
			return fmt.Errorf("failed to store leaderboard: %w", err)
		}
		if err := s.ArenaDB.UpsertSession(ctx, record); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}

		var rank *int
		if r, rankErr := board.Rank(playerID); rankErr == nil {
			rank = &r
		}

		s.logger.InfoContext(ctx, "Score logged", "player_id", playerID, "score", score)

		s.publish(ctx, arenaevents.ScoreLoggedSubject, arenaevents.ScoreLoggedPayload{
			PlayerID: playerID,
			Score:    score,
			Rank:     rank,
		})

		result = &SubmitScoreResult{
			PlayerID: playerID,
			Score:    score,
			Rank:     rank,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
