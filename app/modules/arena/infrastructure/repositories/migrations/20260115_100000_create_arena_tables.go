package arenamigrations

import (
	"context"
	"fmt"

	arenadb "github.com/arcade-league/arena/app/modules/arena/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating arena_leaderboards and arena_game_sessions tables...")

		if _, err := db.NewCreateTable().Model((*arenadb.Leaderboard)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*arenadb.GameSession)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// Only one active leaderboard at a time.
		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS idx_arena_leaderboards_active ON arena_leaderboards (is_active) WHERE is_active").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Arena tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping arena_leaderboards and arena_game_sessions tables...")

		if _, err := db.NewDropTable().Model((*arenadb.GameSession)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*arenadb.Leaderboard)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Arena tables dropped successfully!")
		return nil
	})
}
