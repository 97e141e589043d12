package arenaevents

// Stream name
const ArenaStreamName = "arena"

// Published subjects
const (
	GameStartedSubject       = "arena.game.started"
	ScoreLoggedSubject       = "arena.score.logged"
	PrizeClaimedSubject      = "arena.prize.claimed"
	RoundSettledSubject      = "arena.round.settled"
	PrizePoolToppedUpSubject = "arena.prizepool.topped.up"
)

// GameStartedPayload is published when a player opens a session and the entry
// fee has been collected.
type GameStartedPayload struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	StartTime   int64  `json:"start_time"`
	EntryFee    uint64 `json:"entry_fee"`
	PrizePool   uint64 `json:"prize_pool"`
}

// ScoreLoggedPayload is published when a submitted score lands on the
// leaderboard.
type ScoreLoggedPayload struct {
	PlayerID string `json:"player_id"`
	Score    uint32 `json:"score"`
	Rank     *int   `json:"rank,omitempty"` // nil when the score was evicted immediately
}

// PrizeClaimedPayload is published after a successful per-rank claim.
type PrizeClaimedPayload struct {
	PlayerID string `json:"player_id"`
	Rank     int    `json:"rank"`
	Amount   uint64 `json:"amount"`
}

// SettledPayout mirrors one settlement transfer.
type SettledPayout struct {
	PlayerID string `json:"player_id"`
	Amount   uint64 `json:"amount"`
}

// RoundSettledPayload is published after an end-of-round settlement clears
// the leaderboard.
type RoundSettledPayload struct {
	Payouts  []SettledPayout `json:"payouts"`
	Rollover uint64          `json:"rollover"`
}

// PrizePoolToppedUpPayload is published after a sponsor contribution.
type PrizePoolToppedUpPayload struct {
	Contributor string `json:"contributor"`
	Amount      uint64 `json:"amount"`
	PrizePool   uint64 `json:"prize_pool"`
}
