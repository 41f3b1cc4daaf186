package services

import (
	"context"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/repository"
)

type LandmarkStatsService interface {
	GetLandmarkStats(ctx context.Context) (*models.LandmarkStats, error)
}

type landmarkStatsService struct {
	landmarkRepo repository.LandmarkRepository
}

func NewLandmarkStatsService(landmarkRepo repository.LandmarkRepository) LandmarkStatsService {
	return &landmarkStatsService{
		landmarkRepo: landmarkRepo,
	}
}

// GetLandmarkStats summarizes the current snapshot, favorites included.
func (s *landmarkStatsService) GetLandmarkStats(ctx context.Context) (*models.LandmarkStats, error) {
	landmarks := s.landmarkRepo.All()

	stats := &models.LandmarkStats{
		TotalLandmarks: len(landmarks),
		Favorites:      len(FilterLandmarks(landmarks, true)),
		ByState:        make(map[string]int),
		ByPark:         make(map[string]int),
	}
	for _, l := range landmarks {
		stats.ByState[l.State]++
		stats.ByPark[l.Park]++
	}
	return stats, nil
}
