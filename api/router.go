package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arcade-league/arena/api/handlers"
	arenaservice "github.com/arcade-league/arena/app/modules/arena/application"
	"github.com/arcade-league/arena/pkg/jwt"
)

// NewRouter wires the arena service into a chi router. Read endpoints are
// public, game endpoints require a player token, and admin endpoints require
// the admin role.
func NewRouter(service arenaservice.Service, jwtService jwt.Service) http.Handler {
	h := handlers.NewArenaHandler(service)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/arena", func(r chi.Router) {
		r.Get("/leaderboard", h.GetLeaderboard)
		r.Get("/players/{playerID}/rank", h.GetRank)

		r.Group(func(r chi.Router) {
			r.Use(handlers.Authenticate(jwtService))

			r.Post("/games", h.StartGame)
			r.Post("/scores", h.SubmitScore)
			r.Post("/claims", h.ClaimPrize)
			r.Post("/prize-pool/contributions", h.AddToPrizePool)

			r.Group(func(r chi.Router) {
				r.Use(handlers.RequireAdmin)

				r.Post("/leaderboard", h.Initialize)
				r.Put("/secret-key", h.SetSecretKey)
				r.Put("/token-pool", h.SetTokenPool)
				r.Post("/settlements", h.SettleRound)
				r.Post("/commission/withdrawals", h.WithdrawCommission)
			})
		})
	})

	return r
}
