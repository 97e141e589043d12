package arenadomain

import "errors"

// Sentinel errors for the engine. These are business-domain conditions;
// callers surface them verbatim, nothing is retried internally.
var (
	// ErrInvalidConfig indicates ratio or distribution sums violate the
	// initialization invariants.
	ErrInvalidConfig = errors.New("invalid leaderboard configuration")

	// ErrNameTooLong indicates a display name exceeds the 10-character cap.
	ErrNameTooLong = errors.New("display name too long")

	// ErrSessionAlreadyActive indicates the player already has an open session.
	ErrSessionAlreadyActive = errors.New("game session already active for player")

	// ErrSessionNotStarted indicates no session exists for the player.
	ErrSessionNotStarted = errors.New("game session not started")

	// ErrSessionExpired indicates the score arrived past the session window.
	ErrSessionExpired = errors.New("game session expired")

	// ErrInvalidSessionKey indicates the submitted key does not match the
	// key derived for the session.
	ErrInvalidSessionKey = errors.New("invalid session key")

	// ErrScoreAlreadyLogged indicates the session is already in a terminal state.
	ErrScoreAlreadyLogged = errors.New("score already logged for session")

	// ErrPlayerNotRanked indicates the player is absent from the leaderboard.
	ErrPlayerNotRanked = errors.New("player not on leaderboard")

	// ErrNotEligibleForPrize indicates the player is ranked outside the paid
	// positions.
	ErrNotEligibleForPrize = errors.New("rank not eligible for prize")

	// ErrPrizeAlreadyClaimed indicates a repeat claim by the same entry.
	ErrPrizeAlreadyClaimed = errors.New("prize already claimed")

	// ErrWrongPrizePolicy indicates the operation is not available under the
	// leaderboard's configured prize policy.
	ErrWrongPrizePolicy = errors.New("operation not allowed under configured prize policy")

	// ErrInsufficientCommission indicates a withdrawal larger than the
	// accrued commission pool.
	ErrInsufficientCommission = errors.New("withdrawal exceeds commission pool")

	// ErrTransferFailed wraps a failure from the ledger collaborator.
	ErrTransferFailed = errors.New("token transfer failed")
)
