package arenadb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
)

// Leaderboard is the persisted form of the leaderboard aggregate plus its
// configuration. One row per game instance; is_active marks the current one.
type Leaderboard struct {
	bun.BaseModel `bun:"table:arena_leaderboards,alias:al"`

	ID             int64                   `bun:"id,pk,autoincrement"`
	Entries        []arenadomain.Entry     `bun:"entries,type:jsonb,notnull"`
	PrizePool      int64                   `bun:"prize_pool,notnull,default:0"`
	CommissionPool int64                   `bun:"commission_pool,notnull,default:0"`
	EntryFee       int64                   `bun:"entry_fee,notnull"`
	PrizeRatio     int16                   `bun:"prize_ratio,notnull"`
	Distribution   [3]uint8                `bun:"distribution,type:jsonb,notnull"`
	Policy         arenadomain.PrizePolicy `bun:"policy,notnull"`
	KeyVerified    bool                    `bun:"key_verified,notnull,default:false"`
	OwnerAccount   string                  `bun:"owner_account,notnull"`
	TokenPool      string                  `bun:"token_pool"`
	SecretKey      []byte                  `bun:"secret_key"`
	IsActive       bool                    `bun:"is_active,notnull"`
	UpdateID       uuid.UUID               `bun:"update_id,type:uuid"`
	CreatedAt      time.Time               `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time               `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

var _ bun.BeforeInsertHook = (*Leaderboard)(nil)

func (l *Leaderboard) BeforeInsert(ctx context.Context, _ *bun.InsertQuery) error {
	if l.UpdateID == uuid.Nil {
		l.UpdateID = uuid.New()
	}
	return nil
}

// Board converts the persisted columns to the domain aggregate.
func (l *Leaderboard) Board() *arenadomain.Leaderboard {
	entries := make([]arenadomain.Entry, len(l.Entries))
	copy(entries, l.Entries)
	return &arenadomain.Leaderboard{
		PrizePool:      uint64(l.PrizePool),
		CommissionPool: uint64(l.CommissionPool),
		Entries:        entries,
	}
}

// SetBoard writes the domain aggregate back onto the model.
func (l *Leaderboard) SetBoard(b *arenadomain.Leaderboard) {
	l.PrizePool = int64(b.PrizePool)
	l.CommissionPool = int64(b.CommissionPool)
	l.Entries = b.Entries
}

// Config converts the persisted columns to the domain configuration.
func (l *Leaderboard) Config() *arenadomain.Config {
	var secret arenadomain.Secret
	copy(secret[:], l.SecretKey)
	return &arenadomain.Config{
		EntryFee:        uint64(l.EntryFee),
		PrizeRatio:      uint8(l.PrizeRatio),
		CommissionRatio: uint8(100 - l.PrizeRatio),
		Distribution:    arenadomain.Distribution(l.Distribution),
		Policy:          l.Policy,
		KeyVerified:     l.KeyVerified,
		OwnerAccount:    l.OwnerAccount,
		TokenPool:       l.TokenPool,
		Secret:          secret,
	}
}

// GameSession is the persisted per-player session record. The row is reused:
// a new start for the same player reinitializes it.
type GameSession struct {
	bun.BaseModel `bun:"table:arena_game_sessions,alias:ags"`

	PlayerID    string    `bun:"player_id,pk"`
	DisplayName string    `bun:"display_name,notnull"`
	StartTime   int64     `bun:"start_time,notnull"`
	Completed   bool      `bun:"completed,notnull,default:false"`
	SessionKey  []byte    `bun:"session_key"`
	KeyVerified bool      `bun:"key_verified,notnull,default:false"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Session converts the row to the domain session.
func (g *GameSession) Session() *arenadomain.Session {
	var key arenadomain.SessionKey
	copy(key[:], g.SessionKey)
	return &arenadomain.Session{
		PlayerID:    g.PlayerID,
		DisplayName: g.DisplayName,
		StartTime:   g.StartTime,
		Completed:   g.Completed,
		Key:         key,
		KeyVerified: g.KeyVerified,
	}
}

// SessionModel builds a row from a domain session.
func SessionModel(s *arenadomain.Session) *GameSession {
	m := &GameSession{
		PlayerID:    s.PlayerID,
		DisplayName: s.DisplayName,
		StartTime:   s.StartTime,
		Completed:   s.Completed,
		KeyVerified: s.KeyVerified,
	}
	if s.KeyVerified {
		m.SessionKey = append([]byte(nil), s.Key[:]...)
	}
	return m
}
