package arenaservice

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenadb "github.com/arcade-league/arena/app/modules/arena/infrastructure/repositories"
	"github.com/arcade-league/arena/internal/ledger"
)

// ------------------------
// Fake Arena Repo
// ------------------------

type FakeArenaRepo struct {
	trace []string

	Stored   *arenadb.Leaderboard
	Sessions map[string]*arenadb.GameSession

	GetActiveLeaderboardFunc func(ctx context.Context) (*arenadb.Leaderboard, error)
	CreateLeaderboardFunc    func(ctx context.Context, lb *arenadb.Leaderboard) (*arenadb.Leaderboard, error)
	UpdateLeaderboardFunc    func(ctx context.Context, lb *arenadb.Leaderboard) error
	GetSessionFunc           func(ctx context.Context, playerID string) (*arenadb.GameSession, error)
	UpsertSessionFunc        func(ctx context.Context, session *arenadb.GameSession) error
}

func NewFakeArenaRepo() *FakeArenaRepo {
	return &FakeArenaRepo{
		Sessions: map[string]*arenadb.GameSession{},
	}
}

func (f *FakeArenaRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeArenaRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeArenaRepo) GetActiveLeaderboard(ctx context.Context) (*arenadb.Leaderboard, error) {
	f.record("GetActiveLeaderboard")
	if f.GetActiveLeaderboardFunc != nil {
		return f.GetActiveLeaderboardFunc(ctx)
	}
	if f.Stored == nil {
		return nil, arenadb.ErrNoActiveLeaderboard
	}
	cp := *f.Stored
	cp.Entries = append([]arenadomain.Entry(nil), f.Stored.Entries...)
	return &cp, nil
}

func (f *FakeArenaRepo) CreateLeaderboard(ctx context.Context, lb *arenadb.Leaderboard) (*arenadb.Leaderboard, error) {
	f.record("CreateLeaderboard")
	if f.CreateLeaderboardFunc != nil {
		return f.CreateLeaderboardFunc(ctx, lb)
	}
	if f.Stored != nil {
		return nil, arenadb.ErrLeaderboardExists
	}
	lb.IsActive = true
	f.Stored = lb
	return lb, nil
}

func (f *FakeArenaRepo) UpdateLeaderboard(ctx context.Context, lb *arenadb.Leaderboard) error {
	f.record("UpdateLeaderboard")
	if f.UpdateLeaderboardFunc != nil {
		return f.UpdateLeaderboardFunc(ctx, lb)
	}
	if f.Stored == nil {
		return arenadb.ErrNoRowsAffected
	}
	cp := *lb
	f.Stored = &cp
	return nil
}

func (f *FakeArenaRepo) GetSession(ctx context.Context, playerID string) (*arenadb.GameSession, error) {
	f.record("GetSession")
	if f.GetSessionFunc != nil {
		return f.GetSessionFunc(ctx, playerID)
	}
	stored, ok := f.Sessions[playerID]
	if !ok {
		return nil, arenadb.ErrSessionNotFound
	}
	cp := *stored
	return &cp, nil
}

func (f *FakeArenaRepo) UpsertSession(ctx context.Context, session *arenadb.GameSession) error {
	f.record("UpsertSession")
	if f.UpsertSessionFunc != nil {
		return f.UpsertSessionFunc(ctx, session)
	}
	cp := *session
	f.Sessions[session.PlayerID] = &cp
	return nil
}

// ------------------------
// Fake publisher
// ------------------------

type FakePublisher struct {
	Published map[string][]*message.Message
	Err       error
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{Published: map[string][]*message.Message{}}
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	if f.Err != nil {
		return f.Err
	}
	f.Published[topic] = append(f.Published[topic], messages...)
	return nil
}

func (f *FakePublisher) Close() error { return nil }

// ------------------------
// Fixed clock
// ------------------------

type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() time.Time { return time.Unix(c.now, 0) }

func (c *fakeClock) Advance(seconds int64) { c.now += seconds }

// ------------------------
// Service harness
// ------------------------

type testHarness struct {
	svc    *ArenaService
	repo   *FakeArenaRepo
	ledger *ledger.InMemory
	pub    *FakePublisher
	clock  *fakeClock
}

func newTestHarness() *testHarness {
	repo := NewFakeArenaRepo()
	mem := ledger.NewInMemory()
	pub := NewFakePublisher()
	clock := &fakeClock{now: 1_700_000_000}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewArenaService(repo, mem, pub, logger, nil, clock)

	return &testHarness{svc: svc, repo: repo, ledger: mem, pub: pub, clock: clock}
}
