package controllers

import (
	"context"
	"encoding/json"
	"landmark-explorer/internal/logger"
	"net/http"
	"time"
)

type HealthCheckResponse struct {
	Status           string            `json:"status"`
	Landmarks        int               `json:"landmarks"`
	ExternalServices map[string]string `json:"external_services"`
}

// Pinger is any optional backend the API reports on.
type Pinger func(ctx context.Context) error

type Counter interface {
	Count() int
}

// HealthCheckHandler reports how many landmarks are loaded and whether each
// configured backend answers. A failing backend yields 503.
func HealthCheckHandler(store Counter, backends map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthCheckResponse{
			Status:           "API is running",
			Landmarks:        store.Count(),
			ExternalServices: make(map[string]string),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		code := http.StatusOK
		for name, ping := range backends {
			if err := ping(ctx); err != nil {
				response.ExternalServices[name] = "Unreachable"
				code = http.StatusServiceUnavailable
				continue
			}
			response.ExternalServices[name] = "Available"
		}

		respondWithJSON(w, code, response)
	}
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.WithError(err).Error("Failed to encode health check response")
	}
}
