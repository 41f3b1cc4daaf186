package handlers

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"landmark-explorer/internal/pkg/errors"
	"landmark-explorer/internal/services"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type LandmarkHandler struct {
	landmarkService services.LandmarkService
}

func NewLandmarkHandler(landmarkService services.LandmarkService) *LandmarkHandler {
	return &LandmarkHandler{landmarkService: landmarkService}
}

type favoriteRequest struct {
	IsFavorite *bool `json:"isFavorite"`
}

// ListLandmarks - all landmarks, or only favorites when favoritesOnly=true
func (h *LandmarkHandler) ListLandmarks(w http.ResponseWriter, r *http.Request) {
	favoritesOnly, err := parseBoolParam(r, "favoritesOnly")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid favoritesOnly value")
		return
	}

	landmarks, err := h.landmarkService.ListLandmarks(r.Context(), favoritesOnly)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error fetching landmarks")
		return
	}

	respondWithJSON(w, http.StatusOK, landmarks)
}

// GetLandmark - a single landmark with the map region centered on it
func (h *LandmarkHandler) GetLandmark(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandmarkID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid landmark ID")
		return
	}

	detail, err := h.landmarkService.GetLandmark(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, "Error fetching landmark")
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// SetFavorite - sets the favorite flag and returns the change event
func (h *LandmarkHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := parseLandmarkID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid landmark ID")
		return
	}

	req, err := decodeFavoriteRequest(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Body must be {\"isFavorite\": bool}")
		return
	}

	change, err := h.landmarkService.SetFavorite(r.Context(), id, *req.IsFavorite)
	if err != nil {
		respondWithServiceError(w, err, "Error updating landmark")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"landmark":  change.Landmark,
		"previous":  change.Previous,
		"changed":   change.Changed(),
		"changedAt": change.ChangedAt,
	})
}

func respondWithServiceError(w http.ResponseWriter, err error, fallback string) {
	appErr := errors.Wrap(err, fallback)

	status := http.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		status, appErr.Message = http.StatusNotFound, "Landmark not found"
	case stderrors.Is(err, errors.ErrInvalidInput):
		status, appErr.Message = http.StatusBadRequest, err.Error()
	}

	respondWithJSON(w, status, map[string]string{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}

// decodeFavoriteRequest is as strict as the asset loader: no unknown fields,
// no null, nothing after the object.
func decodeFavoriteRequest(body io.Reader) (favoriteRequest, error) {
	var req favoriteRequest
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, err
	}
	if req.IsFavorite == nil {
		return req, errors.ErrInvalidInput
	}
	if _, err := dec.Token(); err != io.EOF {
		return req, errors.ErrInvalidInput
	}
	return req, nil
}

func parseLandmarkID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, errors.ErrInvalidInput
	}
	return id, nil
}

func parseBoolParam(r *http.Request, name string) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false, nil
	}
	return strconv.ParseBool(value)
}
