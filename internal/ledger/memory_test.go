package ledger

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryTransfer(t *testing.T) {
	l := NewInMemory()
	l.Credit("alice", 100)

	if err := l.Transfer(context.Background(), "alice", "pool", 60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Balance("alice") != 40 || l.Balance("pool") != 60 {
		t.Fatalf("unexpected balances: alice=%d pool=%d", l.Balance("alice"), l.Balance("pool"))
	}
}

func TestInMemoryInsufficientFunds(t *testing.T) {
	l := NewInMemory()
	l.Credit("alice", 10)

	err := l.Transfer(context.Background(), "alice", "pool", 11)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if l.Balance("alice") != 10 || l.Balance("pool") != 0 {
		t.Fatalf("failed transfer must not move funds: alice=%d pool=%d", l.Balance("alice"), l.Balance("pool"))
	}
}

func TestInMemoryCancelledContext(t *testing.T) {
	l := NewInMemory()
	l.Credit("alice", 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Transfer(ctx, "alice", "pool", 1); err == nil {
		t.Fatalf("expected error on cancelled context")
	}
}
