package handlers

import (
	"landmark-explorer/internal/models"
	"net/http"
)

func ListLinks(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, models.DemoLinks())
}
