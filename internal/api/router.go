package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/smoralesusma/olsoftware-dashboard/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware, limiter *RateLimiter) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Recover, mw.Cors, mw.WithIP, mw.Log)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.Session)

			r.Get("/session", h.Session)

			r.Route("/auth", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(limiter.Limit)
					r.Post("/login", h.Login)
					r.Get("/federated", h.FederatedURL)
					r.Post("/federated/callback", h.FederatedCallback)
					r.Post("/register", h.Register)
				})

				r.Post("/logout", h.Logout)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.Guard)

				r.Get("/dashboard", h.Dashboard)
				r.Put("/dashboard/section", h.SelectSection)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.Records)
					r.Post("/filter", h.FilterRecords)
					r.Delete("/filter", h.ClearFilter)

					r.Group(func(r chi.Router) {
						r.Use(mw.RequirePrivileged)
						r.Post("/", h.CreateRecord)
						r.Get("/export", h.ExportRecords)
						r.Put("/{id}", h.EditRecord)
						r.Delete("/{id}", h.DeleteRecord)
					})
				})
			})
		})
	})

	return mux
}
