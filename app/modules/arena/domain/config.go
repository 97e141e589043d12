package arenadomain

import "fmt"

// PrizePolicy selects how the prize pool is paid out. The two policies are
// not interchangeable and must not be mixed on one leaderboard: claim leaves
// pool and entries intact across rounds, settle clears both.
type PrizePolicy string

const (
	// PolicyClaim pays lazily, per player, on demand.
	PolicyClaim PrizePolicy = "claim"
	// PolicySettle pays all eligible ranks in one batch and ends the round.
	PolicySettle PrizePolicy = "settle"
)

// Valid reports whether p names a known policy.
func (p PrizePolicy) Valid() bool {
	return p == PolicyClaim || p == PolicySettle
}

// Config holds the administrator-owned parameters of a leaderboard. Immutable
// after initialization except for the secret and the token pool reference.
type Config struct {
	EntryFee        uint64
	PrizeRatio      uint8
	CommissionRatio uint8
	Distribution    Distribution
	Policy          PrizePolicy
	KeyVerified     bool

	OwnerAccount string
	TokenPool    string
	Secret       Secret
}

// NewConfig validates and builds a leaderboard configuration.
func NewConfig(entryFee uint64, prizeRatio uint8, dist Distribution, policy PrizePolicy, keyVerified bool) (*Config, error) {
	if entryFee == 0 {
		return nil, fmt.Errorf("%w: entry fee must be positive", ErrInvalidConfig)
	}
	if prizeRatio >= 100 {
		return nil, fmt.Errorf("%w: prize ratio %d must be below 100", ErrInvalidConfig, prizeRatio)
	}
	if dist.Sum() != 100 {
		return nil, fmt.Errorf("%w: prize distribution sums to %d, want 100", ErrInvalidConfig, dist.Sum())
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: unknown prize policy %q", ErrInvalidConfig, policy)
	}

	return &Config{
		EntryFee:        entryFee,
		PrizeRatio:      prizeRatio,
		CommissionRatio: 100 - prizeRatio,
		Distribution:    dist,
		Policy:          policy,
		KeyVerified:     keyVerified,
	}, nil
}
