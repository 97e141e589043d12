package arenaservice

import (
	"context"
	"fmt"

	arenadomain "github.com/arcade-league/arena/app/modules/arena/domain"
	arenadb "github.com/arcade-league/arena/app/modules/arena/infrastructure/repositories"
)

// -- Administrative operations --
//
// Authorization is the API boundary's concern (jwt role check); by the time
// these run the caller is trusted.

// Initialize creates the leaderboard with its validated configuration.
// Re-initialization of an existing pool is rejected by the repository.
func (s *ArenaService) Initialize(ctx context.Context, params InitializeParams) error {
	return s.serviceWrapper("Initialize", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		cfg, err := arenadomain.NewConfig(params.EntryFee, params.PrizeRatio, params.Distribution, params.Policy, params.KeyVerified)
		if err != nil {
			s.logger.ErrorContext(ctx, "Rejected leaderboard configuration", "error", err)
			return err
		}

		model := &arenadb.Leaderboard{
			Entries:      []arenadomain.Entry{},
			EntryFee:     int64(cfg.EntryFee),
			PrizeRatio:   int16(cfg.PrizeRatio),
			Distribution: cfg.Distribution,
			Policy:       cfg.Policy,
			KeyVerified:  cfg.KeyVerified,
			OwnerAccount: params.OwnerAccount,
			TokenPool:    params.TokenPool,
		}

		if _, err := s.ArenaDB.CreateLeaderboard(ctx, model); err != nil {
			s.logger.ErrorContext(ctx, "Failed to create leaderboard", "error", err)
			return fmt.Errorf("failed to create leaderboard: %w", err)
		}

		s.logger.InfoContext(ctx, "Leaderboard initialized",
			"entry_fee", cfg.EntryFee,
			"prize_ratio", cfg.PrizeRatio,
			"policy", cfg.Policy,
			"key_verified", cfg.KeyVerified,
		)
		return nil
	})
}

// SetSecretKey rotates the pool-wide secret. The overwrite is unconditional;
// already-issued session keys stay valid against their stored copies.
func (s *ArenaService) SetSecretKey(ctx context.Context, newSecret arenadomain.Secret) error {
	return s.serviceWrapper("SetSecretKey", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}

		lb.SecretKey = append([]byte(nil), newSecret[:]...)
		if err := s.ArenaDB.UpdateLeaderboard(ctx, lb); err != nil {
			return fmt.Errorf("failed to store rotated secret: %w", err)
		}

		s.logger.InfoContext(ctx, "Secret key rotated")
		return nil
	})
}

// SetTokenPool re-points the pool token account.
func (s *ArenaService) SetTokenPool(ctx context.Context, tokenPool string) error {
	return s.serviceWrapper("SetTokenPool", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}

		lb.TokenPool = tokenPool
		if err := s.ArenaDB.UpdateLeaderboard(ctx, lb); err != nil {
			return fmt.Errorf("failed to store token pool: %w", err)
		}

		s.logger.InfoContext(ctx, "Token pool updated", "token_pool", tokenPool)
		return nil
	})
}

// WithdrawCommission drains part of the accrued commission pool to the owner
// account via an authority-signed transfer.
func (s *ArenaService) WithdrawCommission(ctx context.Context, amount uint64) error {
	return s.serviceWrapper("WithdrawCommission", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		lb, err := s.ArenaDB.GetActiveLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}

		board := lb.Board()
		if amount > board.CommissionPool {
			return arenadomain.ErrInsufficientCommission
		}

		if err := s.Ledger.AuthorityTransfer(ctx, lb.TokenPool, lb.OwnerAccount, amount); err != nil {
			s.logger.ErrorContext(ctx, "Commission withdrawal transfer failed", "error", err)
			return transferErr(err)
		}

		board.CommissionPool -= amount
		lb.SetBoard(board)
		if err := s.ArenaDB.UpdateLeaderboard(ctx, lb); err != nil {
			return fmt.Errorf("failed to store commission withdrawal: %w", err)
		}

		s.logger.InfoContext(ctx, "Commission withdrawn", "amount", amount, "remaining", board.CommissionPool)
		return nil
	})
}
