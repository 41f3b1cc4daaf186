package handlers

import (
	"context"
	stderrors "errors"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/pkg/errors"
	"net/http"
)

// LastChangeReader is served by the Redis publisher.
type LastChangeReader interface {
	LastChange(ctx context.Context, landmarkID int) (*models.FavoriteChange, error)
}

type LastChangeHandler struct {
	reader LastChangeReader
}

func NewLastChangeHandler(reader LastChangeReader) *LastChangeHandler {
	return &LastChangeHandler{reader: reader}
}

// GetLastChange - the most recent favorite change still held in Redis
func (h *LastChangeHandler) GetLastChange(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandmarkID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid landmark ID")
		return
	}

	change, err := h.reader.LastChange(r.Context(), id)
	if stderrors.Is(err, errors.ErrNotFound) {
		respondWithJSON(w, http.StatusNotFound, map[string]string{
			"error": "No recent change for this landmark",
			"code":  "NOT_FOUND",
		})
		return
	}
	if err != nil {
		respondWithServiceError(w, err, "Error fetching last change")
		return
	}

	respondWithJSON(w, http.StatusOK, change)
}
