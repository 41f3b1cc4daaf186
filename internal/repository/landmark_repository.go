package repository

import (
	"fmt"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/pkg/errors"
	"sync"
	"time"
)

type LandmarkRepository interface {
	All() []models.Landmark
	GetByID(id int) (models.Landmark, error)
	SetFavorite(id int, value bool) (models.FavoriteChange, error)
	Count() int
}

// landmarkRepository owns the loaded collection. Order is fixed at
// construction and records are never added or removed.
type landmarkRepository struct {
	mu        sync.RWMutex
	landmarks []models.Landmark
	index     map[int]int
	now       func() time.Time
}

func NewLandmarkRepository(landmarks []models.Landmark) (LandmarkRepository, error) {
	owned := make([]models.Landmark, len(landmarks))
	copy(owned, landmarks)

	index := make(map[int]int, len(owned))
	for i, l := range owned {
		if _, dup := index[l.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate landmark id %d", errors.ErrInvalidInput, l.ID)
		}
		index[l.ID] = i
	}

	return &landmarkRepository{
		landmarks: owned,
		index:     index,
		now:       time.Now,
	}, nil
}

// All returns a snapshot in canonical order.
func (r *landmarkRepository) All() []models.Landmark {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Landmark, len(r.landmarks))
	copy(out, r.landmarks)
	return out
}

func (r *landmarkRepository) GetByID(id int) (models.Landmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return models.Landmark{}, fmt.Errorf("landmark %d: %w", id, errors.ErrNotFound)
	}
	return r.landmarks[i], nil
}

func (r *landmarkRepository) SetFavorite(id int, value bool) (models.FavoriteChange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return models.FavoriteChange{}, fmt.Errorf("landmark %d: %w", id, errors.ErrNotFound)
	}

	previous := r.landmarks[i].IsFavorite
	r.landmarks[i].IsFavorite = value

	return models.FavoriteChange{
		Landmark:  r.landmarks[i],
		Previous:  previous,
		ChangedAt: r.now(),
	}, nil
}

func (r *landmarkRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.landmarks)
}
