package api

import (
	_ "goldconv/docs"
	"goldconv/internal/quote/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(quoteHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/options", quoteHandler.GetOptions)
		r.Get("/prices", quoteHandler.GetPrice)

		r.Post("/sessions", quoteHandler.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", quoteHandler.GetSession)
			r.Delete("/", quoteHandler.DeleteSession)
			r.Put("/date", quoteHandler.SelectDate)
			r.Post("/retry", quoteHandler.Retry)
			r.Put("/currency", quoteHandler.SelectCurrency)
			r.Post("/conversions", quoteHandler.Convert)
		})
	})
	return router
}
