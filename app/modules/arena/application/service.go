package arenaservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenadb "github.com/arcade-league/arena/app/modules/arena/infrastructure/repositories"
	"github.com/arcade-league/arena/internal/ledger"
	"github.com/arcade-league/arena/internal/observability"
)

// Clock supplies the current time. Session start and expiry arithmetic run
// off it so tests can control the window.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// ArenaService orchestrates the session, leaderboard, and prize operations.
// All mutating operations on the leaderboard aggregate serialize on mu, which
// also covers per-player session transitions; operations on different
// ArenaService instances (different leaderboards) are independent.
type ArenaService struct {
	ArenaDB   arenadb.Repository
	Ledger    ledger.Port
	Publisher message.Publisher

	logger  *slog.Logger
	metrics observability.Metrics
	clock   Clock

	mu sync.Mutex
}

// NewArenaService creates a new ArenaService.
func NewArenaService(db arenadb.Repository, ldg ledger.Port, publisher message.Publisher, logger *slog.Logger, metrics observability.Metrics, clock Clock) *ArenaService {
	if clock == nil {
		clock = SystemClock()
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return &ArenaService{
		ArenaDB:   db,
		Ledger:    ldg,
		Publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
	}
}

// serviceWrapper records attempt/outcome metrics and duration around one
// operation.
func (s *ArenaService) serviceWrapper(operation string, fn func() error) error {
	s.metrics.RecordOperationAttempt(operation)
	start := time.Now()

	err := fn()

	s.metrics.RecordOperationDuration(operation, time.Since(start))
	if err != nil {
		s.metrics.RecordOperationFailure(operation)
		return err
	}
	s.metrics.RecordOperationSuccess(operation)
	return nil
}

// publish serializes the payload and hands it to the event publisher. Publish
// failures are logged, not propagated: the state change already committed.
func (s *ArenaService) publish(ctx context.Context, subject string, payload any) {
	if s.Publisher == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to marshal event payload", "subject", subject, "error", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := s.Publisher.Publish(subject, msg); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "subject", subject, "error", err)
	}
}

// transferErr normalizes ledger failures into the domain transfer error while
// keeping the underlying cause inspectable.
func transferErr(err error) error {
	return fmt.Errorf("%w: %w", arenadomain.ErrTransferFailed, err)
}
