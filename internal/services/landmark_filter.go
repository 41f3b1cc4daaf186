package services

import "landmark-explorer/internal/models"

// FilterLandmarks returns the landmarks visible for the favorites-only toggle,
// keeping their relative order. It never caches, so the result always
// reflects the input.
func FilterLandmarks(landmarks []models.Landmark, favoritesOnly bool) []models.Landmark {
	filtered := make([]models.Landmark, 0, len(landmarks))
	for _, l := range landmarks {
		if !favoritesOnly || l.IsFavorite {
			filtered = append(filtered, l)
		}
	}
	return filtered
}
