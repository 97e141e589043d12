package arenadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ArenaDBImpl handles database operations for leaderboards and sessions.
type ArenaDBImpl struct {
	DB *bun.DB
}

// GetActiveLeaderboard retrieves the currently active leaderboard.
func (db *ArenaDBImpl) GetActiveLeaderboard(ctx context.Context) (*Leaderboard, error) {
	leaderboard := new(Leaderboard)

	err := db.DB.NewSelect().
		Model(leaderboard).
		Where("is_active = ?", true).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActiveLeaderboard
		}
		return nil, fmt.Errorf("failed to get active leaderboard: %w", err)
	}
	return leaderboard, nil
}

// CreateLeaderboard inserts a new active leaderboard. Re-initialization of an
// existing pool is rejected here, not in the domain.
func (db *ArenaDBImpl) CreateLeaderboard(ctx context.Context, lb *Leaderboard) (*Leaderboard, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.NewSelect().
		Model((*Leaderboard)(nil)).
		Where("is_active = ?", true).
		Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for active leaderboard: %w", err)
	}
	if exists {
		return nil, ErrLeaderboardExists
	}

	lb.IsActive = true
	if _, err := tx.NewInsert().Model(lb).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert leaderboard: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit leaderboard creation: %w", err)
	}
	return lb, nil
}

// UpdateLeaderboard stores the mutated aggregate back, stamping a fresh
// update ID.
func (db *ArenaDBImpl) UpdateLeaderboard(ctx context.Context, lb *Leaderboard) error {
	lb.UpdateID = uuid.New()
	lb.UpdatedAt = time.Now()

	res, err := db.DB.NewUpdate().
		Model(lb).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update leaderboard: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// GetSession retrieves the session record for a player.
func (db *ArenaDBImpl) GetSession(ctx context.Context, playerID string) (*GameSession, error) {
	session := new(GameSession)

	err := db.DB.NewSelect().
		Model(session).
		Where("player_id = ?", playerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session for %s: %w", playerID, err)
	}
	return session, nil
}

// UpsertSession creates or reinitializes the player's session record.
func (db *ArenaDBImpl) UpsertSession(ctx context.Context, session *GameSession) error {
	session.UpdatedAt = time.Now()

	_, err := db.DB.NewInsert().
		Model(session).
		On("CONFLICT (player_id) DO UPDATE").
		Set("display_name = EXCLUDED.display_name").
		Set("start_time = EXCLUDED.start_time").
		Set("completed = EXCLUDED.completed").
		Set("session_key = EXCLUDED.session_key").
		Set("key_verified = EXCLUDED.key_verified").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert session for %s: %w", session.PlayerID, err)
	}
	return nil
}
