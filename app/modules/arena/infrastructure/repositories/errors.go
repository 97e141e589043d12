package arenadb

import "errors"

// Sentinel errors for the repository layer. These are infrastructure-level
// conditions, not business-domain errors.
var (
	// ErrNoActiveLeaderboard indicates no leaderboard has been initialized.
	ErrNoActiveLeaderboard = errors.New("no active leaderboard found")

	// ErrLeaderboardExists indicates an initialize call against a pool that
	// already has an active leaderboard.
	ErrLeaderboardExists = errors.New("active leaderboard already exists")

	// ErrSessionNotFound indicates the player has no session record.
	ErrSessionNotFound = errors.New("game session not found")

	// ErrNoRowsAffected indicates an UPDATE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
