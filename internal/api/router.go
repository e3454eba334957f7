package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"geo-distance-service/internal/api/handlers"
	"geo-distance-service/internal/ports"
	"geo-distance-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters
// beyond the factory registry they are handed).
func NewRouter(calc *services.Calculator, factories map[string]ports.StrategyFactory) http.Handler {
	mux := http.NewServeMux()

	distanceHandler := &handlers.DistanceHandler{Calc: calc}
	strategyHandler := &handlers.StrategyHandler{
		Calc:      calc,
		Factories: factories,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/distance", distanceHandler.Calculate)
	mux.HandleFunc("/strategy", strategyHandler.Strategy)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
