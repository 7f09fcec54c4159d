package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkosinov/taskboard/internal/handler"
	"github.com/mkosinov/taskboard/internal/middleware"
	"github.com/mkosinov/taskboard/internal/middleware/metrics"
	"github.com/mkosinov/taskboard/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{deps.Config.Public.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	h := deps.Handler

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		// realtime endpoint authenticates its own token query parameter,
		// browsers can't set headers on websocket dials
		r.Get("/ws", deps.Hub.ServeWS(deps.Jwt))

		r.Group(func(r chi.Router) {
			r.Use(middleware.NeedAuth(deps.Jwt))

			r.Get("/boards", h.GetBoards)
			r.Post("/boards", h.CreateBoard)
			r.Get("/boards/{id}", h.GetBoard)
			r.Post("/boards/{id}/members", h.InviteMember)

			r.Post("/lists", h.CreateList)
			r.Delete("/lists/{id}", h.DeleteList)
			r.Put("/lists/reorder", h.ReorderLists)

			r.Post("/cards", h.CreateCard)
			r.Delete("/cards/{id}", h.DeleteCard)
			r.Put("/cards/move", h.MoveCard)
			r.Get("/cards/{id}/details", h.GetCardDetails)
			r.Put("/cards/{id}/details", h.UpdateCardDetails)

			r.Post("/comments", h.AddComment)
		})
	})

	return r
}
