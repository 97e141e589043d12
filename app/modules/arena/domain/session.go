package arenadomain

import "unicode/utf8"

const (
	// MaxDisplayNameRunes caps the display name, counted in characters so
	// multi-byte names are not penalized.
	MaxDisplayNameRunes = 10

	// SessionWindowSeconds is how long a session stays open for score
	// submission. Expiry is recomputed on demand, there is no timer.
	SessionWindowSeconds = 600
)

// Session is one timed attempt by one player. At most one live (uncompleted)
// session exists per player; a completed record is reinitialized on the next
// start.
type Session struct {
	PlayerID    string
	DisplayName string
	StartTime   int64
	Completed   bool

	// Key is set only on key-verified leaderboards.
	Key         SessionKey
	KeyVerified bool
}

// NewSession opens a session for the player at the given time. The session
// key is derived only when keyVerified is set.
func NewSession(playerID, displayName string, now int64, keyVerified bool, secret Secret) (*Session, error) {
	if utf8.RuneCountInString(displayName) > MaxDisplayNameRunes {
		return nil, ErrNameTooLong
	}

	s := &Session{
		PlayerID:    playerID,
		DisplayName: displayName,
		StartTime:   now,
		KeyVerified: keyVerified,
	}
	if keyVerified {
		s.Key = DeriveSessionKey(playerID, now, secret)
	}
	return s, nil
}

// Expired reports whether the submission window has closed.
func (s *Session) Expired(now int64) bool {
	return now-s.StartTime > SessionWindowSeconds
}

// Submit drives the session to its terminal state for a score submission.
// Check order matters: expiry wins over everything else so a stale session
// cannot be rescued by a valid key, and an expired or key-rejected session is
// marked completed even though the call fails, which blocks retries.
func (s *Session) Submit(now int64, submittedKey *SessionKey) error {
	if s.Expired(now) {
		s.Completed = true
		return ErrSessionExpired
	}
	if s.KeyVerified {
		if submittedKey == nil || !VerifySessionKey(s.Key, *submittedKey) {
			s.Completed = true
			return ErrInvalidSessionKey
		}
	}
	if s.Completed {
		return ErrScoreAlreadyLogged
	}
	s.Completed = true
	return nil
}
