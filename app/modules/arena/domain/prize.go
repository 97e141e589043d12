package arenadomain

// PrizeRanks is the number of paid positions.
const PrizeRanks = 3

// Distribution holds the payout percentage for ranks 0..2. A valid
// distribution sums to exactly 100.
type Distribution [PrizeRanks]uint8

// Sum returns the total of the three shares.
func (d Distribution) Sum() int {
	return int(d[0]) + int(d[1]) + int(d[2])
}

// ClaimAmount computes the per-rank payout for the claim policy. The amount
// is evaluated against the live pool, so a top-up made after the score landed
// raises a not-yet-claimed winner's share.
func ClaimAmount(prizePool uint64, rank int, d Distribution) uint64 {
	return prizePool * uint64(d[rank]) / 100
}

// SettlePayout is one transfer produced by round settlement.
type SettlePayout struct {
	PlayerID string
	Amount   uint64
}

// SettlePayouts computes the end-of-round distribution: one payout per ranked
// winner up to PrizeRanks, and the sum of the undistributed shares (when
// fewer than three players scored) as rollover for the pool owner. Integer
// truncation per share is the only tolerated loss.
func SettlePayouts(l *Leaderboard, d Distribution) (winners []SettlePayout, rollover uint64) {
	winnerCount := min(len(l.Entries), PrizeRanks)

	for i := 0; i < winnerCount; i++ {
		winners = append(winners, SettlePayout{
			PlayerID: l.Entries[i].PlayerID,
			Amount:   l.PrizePool * uint64(d[i]) / 100,
		})
	}
	for i := winnerCount; i < PrizeRanks; i++ {
		rollover += l.PrizePool * uint64(d[i]) / 100
	}
	return winners, rollover
}
