package handlers

import (
	"landmark-explorer/internal/logger"
	"landmark-explorer/internal/services"
	"net/http"
)

type LandmarkStatsHandler struct {
	landmarkStatsService services.LandmarkStatsService
}

func NewLandmarkStatsHandler(landmarkStatsService services.LandmarkStatsService) *LandmarkStatsHandler {
	return &LandmarkStatsHandler{
		landmarkStatsService: landmarkStatsService,
	}
}

func (h *LandmarkStatsHandler) GetLandmarkStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.landmarkStatsService.GetLandmarkStats(ctx)
	if err != nil {
		logger.Logger.WithError(err).Error("Error fetching landmark stats")
		respondWithError(w, http.StatusInternalServerError, "Error fetching landmark stats")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
