package arenahandlers

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	arenaevents "github.com/arcade-league/arena/app/modules/arena/events"
)

// ArenaHandlers writes an audit record for every arena event. It is the
// consuming side of the engine's event stream.
type ArenaHandlers struct {
	logger *slog.Logger
}

// NewArenaHandlers creates a new instance of ArenaHandlers.
func NewArenaHandlers(logger *slog.Logger) Handlers {
	return &ArenaHandlers{logger: logger}
}

// HandleGameStarted records a session opening.
func (h *ArenaHandlers) HandleGameStarted(msg *message.Message) error {
	var payload arenaevents.GameStartedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal GameStartedPayload: %w", err)
	}

	h.logger.Info("game started",
		slog.String("player_id", payload.PlayerID),
		slog.String("display_name", payload.DisplayName),
		slog.Int64("start_time", payload.StartTime),
		slog.Uint64("prize_pool", payload.PrizePool),
	)
	return nil
}

// HandleScoreLogged records a scored session.
func (h *ArenaHandlers) HandleScoreLogged(msg *message.Message) error {
	var payload arenaevents.ScoreLoggedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal ScoreLoggedPayload: %w", err)
	}

	attrs := []any{
		slog.String("player_id", payload.PlayerID),
		slog.Uint64("score", uint64(payload.Score)),
	}
	if payload.Rank != nil {
		attrs = append(attrs, slog.Int("rank", *payload.Rank))
	}
	h.logger.Info("score logged", attrs...)
	return nil
}

// HandlePrizeClaimed records a per-rank payout.
func (h *ArenaHandlers) HandlePrizeClaimed(msg *message.Message) error {
	var payload arenaevents.PrizeClaimedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal PrizeClaimedPayload: %w", err)
	}

	h.logger.Info("prize claimed",
		slog.String("player_id", payload.PlayerID),
		slog.Int("rank", payload.Rank),
		slog.Uint64("amount", payload.Amount),
	)
	return nil
}

// HandleRoundSettled records an end-of-round settlement.
func (h *ArenaHandlers) HandleRoundSettled(msg *message.Message) error {
	var payload arenaevents.RoundSettledPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal RoundSettledPayload: %w", err)
	}

	h.logger.Info("round settled",
		slog.Int("payouts", len(payload.Payouts)),
		slog.Uint64("rollover", payload.Rollover),
	)
	return nil
}

// HandlePrizePoolToppedUp records a sponsor contribution.
func (h *ArenaHandlers) HandlePrizePoolToppedUp(msg *message.Message) error {
	var payload arenaevents.PrizePoolToppedUpPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal PrizePoolToppedUpPayload: %w", err)
	}

	h.logger.Info("prize pool topped up",
		slog.String("contributor", payload.Contributor),
		slog.Uint64("amount", payload.Amount),
		slog.Uint64("prize_pool", payload.PrizePool),
	)
	return nil
}
