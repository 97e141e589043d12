package ledger

import (
	"context"
	"fmt"
	"sync"
)

// InMemory is a Port backed by an in-process balance map. It backs tests and
// local development; production wiring substitutes the real transfer
// collaborator.
type InMemory struct {
	mu       sync.Mutex
	balances map[string]uint64
}

// NewInMemory creates an empty in-memory ledger.
func NewInMemory() *InMemory {
	return &InMemory{balances: make(map[string]uint64)}
}

// Credit seeds an account balance.
func (l *InMemory) Credit(account string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] += amount
}

// Balance returns the current balance of an account.
func (l *InMemory) Balance(account string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account]
}

func (l *InMemory) Transfer(ctx context.Context, from, to string, amount uint64) error {
	return l.move(ctx, from, to, amount)
}

func (l *InMemory) AuthorityTransfer(ctx context.Context, from, to string, amount uint64) error {
	return l.move(ctx, from, to, amount)
}

func (l *InMemory) move(ctx context.Context, from, to string, amount uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[from] < amount {
		return fmt.Errorf("%w: account %s holds %d, needs %d", ErrInsufficientFunds, from, l.balances[from], amount)
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}
