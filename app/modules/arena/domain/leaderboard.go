package arenadomain

import (
	"cmp"
	"slices"
)

// MaxEntries bounds the leaderboard; the lowest score is evicted on overflow.
const MaxEntries = 10

// Entry is one ranked scorer.
type Entry struct {
	PlayerID    string `json:"player_id"`
	Score       uint32 `json:"score"`
	DisplayName string `json:"display_name"`
	Claimed     bool   `json:"claimed"`
}

// Leaderboard is the single mutable aggregate for one game instance: the two
// pool balances and the bounded, descending-ordered entry list. All mutation
// goes through its methods, serialized by the owning service.
type Leaderboard struct {
	PrizePool      uint64  `json:"prize_pool"`
	CommissionPool uint64  `json:"commission_pool"`
	Entries        []Entry `json:"entries"`
}

// Insert appends the entry, restores descending score order, and truncates to
// MaxEntries. The sort is stable, so equal scores keep submission order.
func (l *Leaderboard) Insert(e Entry) {
	l.Entries = append(l.Entries, e)
	slices.SortStableFunc(l.Entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(l.Entries) > MaxEntries {
		l.Entries = l.Entries[:MaxEntries]
	}
}

// Rank returns the zero-based position of the player, or ErrPlayerNotRanked
// if the player was evicted or never entered.
func (l *Leaderboard) Rank(playerID string) (int, error) {
	for i, e := range l.Entries {
		if e.PlayerID == playerID {
			return i, nil
		}
	}
	return 0, ErrPlayerNotRanked
}

// CreditEntryFee splits an entry fee between the two pools by the configured
// ratio. Integer division drops the remainder from both pools, matching pool
// accounting elsewhere.
func (l *Leaderboard) CreditEntryFee(fee uint64, prizeRatio uint8) {
	l.PrizePool += fee * uint64(prizeRatio) / 100
	l.CommissionPool += fee * uint64(100-prizeRatio) / 100
}
