package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/padraigob/resold/internal/http/export"
	"github.com/padraigob/resold/internal/http/importcsv"
	"github.com/padraigob/resold/internal/http/item"
	"github.com/padraigob/resold/internal/http/lot"
	"github.com/padraigob/resold/internal/http/report"
)

func New(
	itemsV1 *item.Handler,
	lotsV1 *lot.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	reportsV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			itemsV1.Routes(r)
		})

		r.Route("/lots", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			lotsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/export", func(r chi.Router) {
			exportV1.Routes(r)
		})

		r.Route("/reports", func(r chi.Router) {
			reportsV1.Routes(r)
		})
	})

	return router
}
