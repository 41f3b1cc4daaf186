package services

import (
	"landmark-explorer/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(landmarks []models.Landmark) []int {
	out := make([]int, 0, len(landmarks))
	for _, l := range landmarks {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterLandmarks(t *testing.T) {
	landmarks := []models.Landmark{
		{ID: 3, IsFavorite: true},
		{ID: 1, IsFavorite: false},
		{ID: 7, IsFavorite: true},
		{ID: 2, IsFavorite: false},
		{ID: 5, IsFavorite: true},
	}

	tests := []struct {
		name          string
		favoritesOnly bool
		want          []int
	}{
		{"all keeps order", false, []int{3, 1, 7, 2, 5}},
		{"favorites keep relative order", true, []int{3, 7, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLandmarks(landmarks, tt.favoritesOnly)
			assert.Equal(t, tt.want, ids(got))
			for _, l := range got {
				assert.True(t, !tt.favoritesOnly || l.IsFavorite)
			}
		})
	}
}

func TestFilterLandmarksEmpty(t *testing.T) {
	for _, favoritesOnly := range []bool{false, true} {
		got := FilterLandmarks(nil, favoritesOnly)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestFilterLandmarksNoFavorites(t *testing.T) {
	got := FilterLandmarks([]models.Landmark{{ID: 1}, {ID: 2}}, true)
	assert.Empty(t, got)
}

func TestFilterLandmarksDoesNotMutateInput(t *testing.T) {
	landmarks := []models.Landmark{{ID: 1, IsFavorite: true}, {ID: 2}}

	got := FilterLandmarks(landmarks, false)
	got[0].IsFavorite = false

	assert.True(t, landmarks[0].IsFavorite)
}
