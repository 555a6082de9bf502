package api

import (
	_ "ratesmanager/docs"
	"ratesmanager/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	// Prometheus
	router.Handle("/metrics", promhttp.Handler())

	router.Post("/api/v1/rates", rateHandler.Add)
	router.Get("/api/v1/rates/{from:[A-Za-z]{3}}/{to:[A-Za-z]{3}}", rateHandler.GetByPair)
	router.Put("/api/v1/rates/{id}", rateHandler.Update)
	router.Delete("/api/v1/rates/{id}", rateHandler.Delete)
	return router
}
