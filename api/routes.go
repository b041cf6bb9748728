package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// RegisterRoutes builds the router for h. metricsHandler serves /metrics.
func RegisterRoutes(h *Handler, metricsHandler http.Handler) http.Handler {
	router := mux.NewRouter()

	// Geohash endpoints
	router.HandleFunc("/encode", h.EncodeLocation).Methods("POST")
	router.HandleFunc("/encode", h.EncodeQuery).Methods("GET")
	router.HandleFunc("/decode/{hash}", h.Decode).Methods("GET")
	router.HandleFunc("/neighbors/{hash}", h.Neighbors).Methods("GET")
	router.HandleFunc("/bbox/{hash}", h.BBox).Methods("GET")

	// Operational endpoints
	router.HandleFunc("/stats", h.Stats).Methods("GET")
	router.HandleFunc("/healthz", h.Healthz).Methods("GET")
	router.Handle("/metrics", metricsHandler).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return handlers.RecoveryHandler()(cors(router))
}
