package arenadomain

import (
	"errors"
	"testing"
)

func TestClaimAmountPerRank(t *testing.T) {
	d := Distribution{50, 30, 20}

	if got := ClaimAmount(210, 0, d); got != 105 {
		t.Fatalf("rank 0: expected 105, got %d", got)
	}
	if got := ClaimAmount(210, 1, d); got != 63 {
		t.Fatalf("rank 1: expected 63, got %d", got)
	}
	if got := ClaimAmount(210, 2, d); got != 42 {
		t.Fatalf("rank 2: expected 42, got %d", got)
	}
}

func TestSettlePayoutsFullPodium(t *testing.T) {
	lb := &Leaderboard{PrizePool: 1000}
	lb.Insert(Entry{PlayerID: "gold", Score: 30})
	lb.Insert(Entry{PlayerID: "silver", Score: 20})
	lb.Insert(Entry{PlayerID: "bronze", Score: 10})
	lb.Insert(Entry{PlayerID: "fourth", Score: 5})

	winners, rollover := SettlePayouts(lb, Distribution{50, 30, 20})

	if len(winners) != 3 {
		t.Fatalf("expected 3 winners, got %d", len(winners))
	}
	if rollover != 0 {
		t.Fatalf("expected no rollover with a full podium, got %d", rollover)
	}

	want := []SettlePayout{
		{PlayerID: "gold", Amount: 500},
		{PlayerID: "silver", Amount: 300},
		{PlayerID: "bronze", Amount: 200},
	}
	for i, w := range want {
		if winners[i] != w {
			t.Fatalf("payout %d: got %+v, want %+v", i, winners[i], w)
		}
	}
}

func TestSettlePayoutsShortPodiumRollsOver(t *testing.T) {
	lb := &Leaderboard{PrizePool: 1000}
	lb.Insert(Entry{PlayerID: "gold", Score: 30})

	winners, rollover := SettlePayouts(lb, Distribution{50, 30, 20})

	if len(winners) != 1 {
		t.Fatalf("expected 1 winner, got %d", len(winners))
	}
	if winners[0].Amount != 500 {
		t.Fatalf("expected winner amount 500, got %d", winners[0].Amount)
	}
	if rollover != 500 {
		t.Fatalf("expected unpaid shares 30+20 to roll over as 500, got %d", rollover)
	}
}

func TestSettlePayoutsEmptyBoard(t *testing.T) {
	lb := &Leaderboard{PrizePool: 777}
	winners, rollover := SettlePayouts(lb, Distribution{50, 30, 20})

	if len(winners) != 0 {
		t.Fatalf("expected no winners, got %d", len(winners))
	}
	// 388 + 233 + 155; truncation is the only tolerated loss.
	if rollover != 776 {
		t.Fatalf("expected rollover 776, got %d", rollover)
	}
}

func TestNewConfigValidation(t *testing.T) {
	if _, err := NewConfig(0, 70, Distribution{50, 30, 20}, PolicyClaim, false); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected zero entry fee to be rejected, got %v", err)
	}
	if _, err := NewConfig(100, 100, Distribution{50, 30, 20}, PolicyClaim, false); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected prize ratio 100 to be rejected, got %v", err)
	}
	if _, err := NewConfig(100, 70, Distribution{50, 30, 10}, PolicyClaim, false); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected distribution sum 90 to be rejected, got %v", err)
	}
	if _, err := NewConfig(100, 70, Distribution{50, 30, 20}, PrizePolicy("raffle"), false); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected unknown policy to be rejected, got %v", err)
	}

	cfg, err := NewConfig(100, 70, Distribution{50, 30, 20}, PolicySettle, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CommissionRatio != 30 {
		t.Fatalf("expected commission ratio 30, got %d", cfg.CommissionRatio)
	}
	if cfg.PrizeRatio+cfg.CommissionRatio != 100 {
		t.Fatalf("ratio invariant broken: %d + %d", cfg.PrizeRatio, cfg.CommissionRatio)
	}
}
