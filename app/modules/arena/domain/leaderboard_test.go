package arenadomain

import (
	"errors"
	"fmt"
	"testing"
)

func sortedDescending(entries []Entry) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Score < entries[i].Score {
			return false
		}
	}
	return true
}

func TestInsertKeepsDescendingOrderAndBound(t *testing.T) {
	lb := &Leaderboard{}
	scores := []uint32{5, 90, 12, 44, 44, 1, 300, 77, 8, 61, 23, 19}

	for i, score := range scores {
		lb.Insert(Entry{PlayerID: fmt.Sprintf("p%d", i), Score: score})
		if len(lb.Entries) > MaxEntries {
			t.Fatalf("leaderboard exceeded bound after insert %d: %d entries", i, len(lb.Entries))
		}
		if !sortedDescending(lb.Entries) {
			t.Fatalf("leaderboard not sorted descending after insert %d: %+v", i, lb.Entries)
		}
	}

	if len(lb.Entries) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(lb.Entries))
	}
	if lb.Entries[0].Score != 300 {
		t.Fatalf("expected top score 300, got %d", lb.Entries[0].Score)
	}
}

func TestInsertEvictsLowestScore(t *testing.T) {
	lb := &Leaderboard{}
	for i := 0; i < MaxEntries; i++ {
		lb.Insert(Entry{PlayerID: fmt.Sprintf("p%d", i), Score: uint32(100 + i)})
	}

	// An 11th score strictly below the current minimum is evicted
	// immediately; the surviving ten are unchanged.
	before := make([]Entry, len(lb.Entries))
	copy(before, lb.Entries)

	lb.Insert(Entry{PlayerID: "loser", Score: 1})

	if len(lb.Entries) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(lb.Entries))
	}
	for i := range before {
		if lb.Entries[i] != before[i] {
			t.Fatalf("entry %d changed on no-op insert: %+v vs %+v", i, lb.Entries[i], before[i])
		}
	}
	if _, err := lb.Rank("loser"); !errors.Is(err, ErrPlayerNotRanked) {
		t.Fatalf("expected evicted player to be unranked, got %v", err)
	}
}

func TestInsertStableTies(t *testing.T) {
	lb := &Leaderboard{}
	lb.Insert(Entry{PlayerID: "first", Score: 50})
	lb.Insert(Entry{PlayerID: "second", Score: 50})
	lb.Insert(Entry{PlayerID: "third", Score: 50})

	want := []string{"first", "second", "third"}
	for i, id := range want {
		if lb.Entries[i].PlayerID != id {
			t.Fatalf("tie order broken at %d: got %s, want %s", i, lb.Entries[i].PlayerID, id)
		}
	}
}

func TestRank(t *testing.T) {
	lb := &Leaderboard{}
	lb.Insert(Entry{PlayerID: "alice", Score: 30})
	lb.Insert(Entry{PlayerID: "bob", Score: 10})
	lb.Insert(Entry{PlayerID: "carol", Score: 20})

	rank, err := lb.Rank("carol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rank != 1 {
		t.Fatalf("expected carol at rank 1, got %d", rank)
	}

	if _, err := lb.Rank("mallory"); !errors.Is(err, ErrPlayerNotRanked) {
		t.Fatalf("expected ErrPlayerNotRanked, got %v", err)
	}
}

func TestCreditEntryFeeSplit(t *testing.T) {
	lb := &Leaderboard{}
	lb.CreditEntryFee(100, 70)

	if lb.PrizePool != 70 {
		t.Fatalf("expected prize pool 70, got %d", lb.PrizePool)
	}
	if lb.CommissionPool != 30 {
		t.Fatalf("expected commission pool 30, got %d", lb.CommissionPool)
	}

	// Integer division drops the remainder from both pools.
	lb2 := &Leaderboard{}
	lb2.CreditEntryFee(99, 70)
	if lb2.PrizePool != 69 || lb2.CommissionPool != 29 {
		t.Fatalf("expected truncated split 69/29, got %d/%d", lb2.PrizePool, lb2.CommissionPool)
	}
}
