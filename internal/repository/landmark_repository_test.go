package repository

import (
	stderrors "errors"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/pkg/errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) LandmarkRepository {
	t.Helper()
	repo, err := NewLandmarkRepository([]models.Landmark{
		{ID: 1, Name: "Turtle Rock", IsFavorite: false},
		{ID: 2, Name: "Silver Salmon Creek", IsFavorite: true},
	})
	require.NoError(t, err)
	return repo
}

func TestNewLandmarkRepositoryRejectsDuplicateIDs(t *testing.T) {
	_, err := NewLandmarkRepository([]models.Landmark{{ID: 1}, {ID: 1}})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
}

func TestNewLandmarkRepositoryCopiesInput(t *testing.T) {
	in := []models.Landmark{{ID: 1, Name: "Turtle Rock"}}
	repo, err := NewLandmarkRepository(in)
	require.NoError(t, err)

	in[0].Name = "changed"
	l, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Turtle Rock", l.Name)
}

func TestAllReturnsSnapshot(t *testing.T) {
	repo := newTestRepository(t)

	all := repo.All()
	require.Len(t, all, 2)
	all[0].IsFavorite = true

	again := repo.All()
	assert.False(t, again[0].IsFavorite)
	assert.Equal(t, []int{1, 2}, []int{again[0].ID, again[1].ID})
}

func TestSetFavoriteUpdatesInPlace(t *testing.T) {
	repo := newTestRepository(t)

	change, err := repo.SetFavorite(1, true)
	require.NoError(t, err)
	assert.True(t, change.Changed())
	assert.False(t, change.Previous)
	assert.True(t, change.Landmark.IsFavorite)
	assert.False(t, change.ChangedAt.IsZero())

	l, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.True(t, l.IsFavorite)
}

func TestSetFavoriteIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.SetFavorite(1, true)
	require.NoError(t, err)
	once := repo.All()

	change, err := repo.SetFavorite(1, true)
	require.NoError(t, err)
	assert.False(t, change.Changed())
	assert.Equal(t, once, repo.All())
}

func TestSetFavoriteUnknownID(t *testing.T) {
	repo := newTestRepository(t)
	before := repo.All()

	_, err := repo.SetFavorite(99, true)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	assert.Equal(t, before, repo.All())
}

func TestGetByIDUnknown(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(42)
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	assert.Equal(t, 2, repo.Count())
}

func TestConcurrentSetFavoriteAndAll(t *testing.T) {
	repo := newTestRepository(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(value bool) {
			defer wg.Done()
			_, err := repo.SetFavorite(1, value)
			assert.NoError(t, err)
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			all := repo.All()
			assert.Len(t, all, 2)
			assert.Equal(t, 1, all[0].ID)
			assert.Equal(t, 2, all[1].ID)
		}()
	}
	wg.Wait()

	_, err := repo.SetFavorite(1, true)
	require.NoError(t, err)
	all := repo.All()
	assert.True(t, all[0].IsFavorite)
	assert.True(t, all[1].IsFavorite)
	assert.Equal(t, 2, repo.Count())
}
