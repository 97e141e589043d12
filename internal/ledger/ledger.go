// Package ledger defines the token-transfer boundary the arena engine
// consumes. The engine never moves balances itself; entry fees, payouts, and
// top-ups all go through a Port implementation supplied at wiring time.
package ledger

import (
	"context"
	"errors"
)

// ErrInsufficientFunds is returned when the source account cannot cover the
// transfer.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Port executes token transfers between accounts. Transfer moves tokens on
// the sender's own authority (entry fees, sponsor top-ups).
// AuthorityTransfer moves tokens out of the pool on the pool's authority
// (prize payouts, commission withdrawal); the recipient is not the signer.
// Both calls are synchronous and bounded by ctx; a failure is terminal for
// the triggering operation, retry is the caller's concern.
type Port interface {
	Transfer(ctx context.Context, from, to string, amount uint64) error
	AuthorityTransfer(ctx context.Context, from, to string, amount uint64) error
}
