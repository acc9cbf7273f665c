package api

import (
	"net/http"
	"pick-time-service/internal/api/handlers"
	"pick-time-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.OrderRepository, store ports.ParamsStore, writer ports.EstimateWriter) http.Handler {
	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{Repo: repo}
	estimateHandler := &handlers.EstimateHandler{
		Repo:   repo,
		Store:  store,
		Writer: writer,
	}
	paramsHandler := &handlers.ParamsHandler{Store: store}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/orders", orderHandler.List)
	mux.HandleFunc("/estimates", estimateHandler.Estimate)
	mux.HandleFunc("/params", paramsHandler.Handle)

	return loggingMiddleware(mux)
}
