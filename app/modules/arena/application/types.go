package arenaservice

import (
	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
)

// InitializeParams carries the administrator-supplied configuration for a new
// leaderboard.
type InitializeParams struct {
	EntryFee     uint64
	PrizeRatio   uint8
	Distribution arenadomain.Distribution
	Policy       arenadomain.PrizePolicy
	KeyVerified  bool
	OwnerAccount string
	TokenPool    string
}

// StartGameResult reports a successfully opened session.
type StartGameResult struct {
	PlayerID    string
	DisplayName string
	StartedAt   int64
}

// SubmitScoreResult reports a logged score. Rank is nil when the score was
// evicted immediately (lower than the whole top ten).
type SubmitScoreResult struct {
	PlayerID string
	Score    uint32
	Rank     *int
}

// ClaimResult reports a per-rank prize payout.
type ClaimResult struct {
	PlayerID string
	Rank     int
	Amount   uint64
}

// SettleResult reports one end-of-round settlement.
type SettleResult struct {
	Payouts  []arenadomain.SettlePayout
	Rollover uint64
}

// LeaderboardSnapshot is the read-only view served to callers.
type LeaderboardSnapshot struct {
	PrizePool      uint64              `json:"prize_pool"`
	CommissionPool uint64              `json:"commission_pool"`
	Policy         string              `json:"policy"`
	Entries        []arenadomain.Entry `json:"entries"`
}
