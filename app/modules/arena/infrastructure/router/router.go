package arenarouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	arenaevents "github.com/arcade-league/arena/app/modules/arena/events"
	arenahandlers "github.com/arcade-league/arena/app/modules/arena/infrastructure/handlers"
)

// ArenaRouter routes published arena events to their consumers.
type ArenaRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
}

// NewArenaRouter creates a new instance of the router.
func NewArenaRouter(logger *slog.Logger, router *message.Router, subscriber message.Subscriber) *ArenaRouter {
	return &ArenaRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
	}
}

// Configure sets up the middlewares and registers the arena event handlers.
func (r *ArenaRouter) Configure(handlers arenahandlers.Handlers) error {
	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	registrations := []struct {
		name    string
		topic   string
		handler message.NoPublishHandlerFunc
	}{
		{"arena.audit.game_started", arenaevents.GameStartedSubject, handlers.HandleGameStarted},
		{"arena.audit.score_logged", arenaevents.ScoreLoggedSubject, handlers.HandleScoreLogged},
		{"arena.audit.prize_claimed", arenaevents.PrizeClaimedSubject, handlers.HandlePrizeClaimed},
		{"arena.audit.round_settled", arenaevents.RoundSettledSubject, handlers.HandleRoundSettled},
		{"arena.audit.prize_pool_topped_up", arenaevents.PrizePoolToppedUpSubject, handlers.HandlePrizePoolToppedUp},
	}

	for _, reg := range registrations {
		r.Router.AddNoPublisherHandler(reg.name, reg.topic, r.subscriber, reg.handler)
		r.logger.Info("registered arena event handler",
			slog.String("handler", reg.name),
			slog.String("topic", reg.topic),
		)
	}

	return nil
}
