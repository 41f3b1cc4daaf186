package services

import (
	"context"
	"landmark-explorer/internal/logger"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/repository"

	"github.com/sirupsen/logrus"
)

// ChangePublisher receives every favorite change that altered a record.
type ChangePublisher interface {
	PublishFavoriteChange(ctx context.Context, change models.FavoriteChange) error
}

type LandmarkService interface {
	ListLandmarks(ctx context.Context, favoritesOnly bool) ([]models.Landmark, error)
	GetLandmark(ctx context.Context, id int) (*models.LandmarkDetail, error)
	SetFavorite(ctx context.Context, id int, value bool) (*models.FavoriteChange, error)
	Count() int
}

type landmarkService struct {
	landmarkRepo repository.LandmarkRepository
	publishers   []ChangePublisher
}

func NewLandmarkService(landmarkRepo repository.LandmarkRepository, publishers ...ChangePublisher) LandmarkService {
	return &landmarkService{
		landmarkRepo: landmarkRepo,
		publishers:   publishers,
	}
}

func (s *landmarkService) ListLandmarks(ctx context.Context, favoritesOnly bool) ([]models.Landmark, error) {
	return FilterLandmarks(s.landmarkRepo.All(), favoritesOnly), nil
}

func (s *landmarkService) GetLandmark(ctx context.Context, id int) (*models.LandmarkDetail, error) {
	landmark, err := s.landmarkRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &models.LandmarkDetail{
		Landmark: landmark,
		Region:   models.RegionAround(landmark.Coordinates),
	}, nil
}

// SetFavorite writes the flag and then notifies publishers. A publisher
// failure is logged; the in-memory write stands.
func (s *landmarkService) SetFavorite(ctx context.Context, id int, value bool) (*models.FavoriteChange, error) {
	change, err := s.landmarkRepo.SetFavorite(id, value)
	if err != nil {
		logger.LogEvent(logrus.WarnLevel, "Favorite update rejected", logrus.Fields{
			"landmark_id": id,
			"error":       err.Error(),
		})
		return nil, err
	}

	fields := logrus.Fields{
		"landmark_id": id,
		"is_favorite": value,
		"changed":     change.Changed(),
	}
	if requestID, ok := RequestIDFromContext(ctx); ok {
		fields["request_id"] = requestID
	}
	logger.LogEvent(logrus.InfoLevel, "Favorite updated", fields)

	if !change.Changed() {
		return &change, nil
	}

	for _, p := range s.publishers {
		if err := p.PublishFavoriteChange(ctx, change); err != nil {
			logger.Logger.WithFields(logrus.Fields{
				"landmark_id": id,
				"error":       err,
			}).Error("Failed to publish favorite change")
		}
	}

	return &change, nil
}

func (s *landmarkService) Count() int {
	return s.landmarkRepo.Count()
}
