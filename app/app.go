package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arcade-league/arena/api"
	arenaservice "github.com/arcade-league/arena/app/modules/arena/application"
	arenahandlers "github.com/arcade-league/arena/app/modules/arena/infrastructure/handlers"
	arenarouter "github.com/arcade-league/arena/app/modules/arena/infrastructure/router"
	"github.com/arcade-league/arena/config"
	"github.com/arcade-league/arena/db/bundb"
	"github.com/arcade-league/arena/eventbus"
	"github.com/arcade-league/arena/internal/ledger"
	"github.com/arcade-league/arena/internal/observability"
	"github.com/arcade-league/arena/pkg/jwt"
)

// App wires the arena engine and its API together.
type App struct {
	Cfg          *config.Config
	ArenaService *arenaservice.ArenaService
	Router       http.Handler
	EventRouter  *message.Router
	Metrics      http.Handler
	Logger       *slog.Logger

	db         *bundb.DBService
	publisher  message.Publisher
	subscriber message.Subscriber
}

// NewApp initializes the application with the necessary services and
// configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)

	publisher, err := eventbus.NewPublisher(cfg.NATS.URL, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := eventbus.NewSubscriber(cfg.NATS.URL, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	eventRouter, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create event router: %w", err)
	}

	auditRouter := arenarouter.NewArenaRouter(logger, eventRouter, subscriber)
	if err := auditRouter.Configure(arenahandlers.NewArenaHandlers(logger)); err != nil {
		return nil, fmt.Errorf("failed to configure arena event router: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.NewPrometheusMetrics(registry)

	arenaService := arenaservice.NewArenaService(
		dbService.ArenaDB,
		ledger.NewInMemory(),
		publisher,
		logger,
		metrics,
		nil,
	)

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.DefaultTTL)

	return &App{
		Cfg:          cfg,
		ArenaService: arenaService,
		Router:       api.NewRouter(arenaService, jwtService),
		EventRouter:  eventRouter,
		Metrics:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Logger:       logger,
		db:           dbService,
		publisher:    publisher,
		subscriber:   subscriber,
	}, nil
}

// DB returns the database service.
func (app *App) DB() *bundb.DBService {
	return app.db
}

// Publisher returns the event publisher.
func (app *App) Publisher() message.Publisher {
	return app.publisher
}

// Close releases the app's connections.
func (app *App) Close() error {
	var firstErr error
	if err := app.EventRouter.Close(); err != nil {
		firstErr = err
	}
	if err := app.publisher.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := app.subscriber.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := app.db.GetDB().Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
