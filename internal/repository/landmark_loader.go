package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"landmark-explorer/internal/models"
	"landmark-explorer/internal/pkg/errors"
)

// landmarkRecord mirrors the asset schema with pointer fields so absent keys
// can be told apart from zero values.
type landmarkRecord struct {
	ID          *int               `json:"id"`
	Name        *string            `json:"name"`
	Park        *string            `json:"park"`
	State       *string            `json:"state"`
	Description *string            `json:"description"`
	IsFavorite  *bool              `json:"isFavorite"`
	ImageName   *string            `json:"imageName"`
	Coordinates *coordinatesRecord `json:"coordinates"`
}

type coordinatesRecord struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// LoadLandmarks reads name from fsys and decodes it into landmarks in source
// order. Every failure wraps errors.ErrAssetLoad; nothing is returned on a
// partial decode.
func LoadLandmarks(fsys fs.FS, name string) ([]models.Landmark, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", errors.ErrAssetLoad, name, err)
	}

	landmarks, err := DecodeLandmarks(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", errors.ErrAssetLoad, name, err)
	}
	return landmarks, nil
}

// DecodeLandmarks decodes a landmark asset held in memory.
func DecodeLandmarks(data []byte) ([]models.Landmark, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records *[]landmarkRecord
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, fmt.Errorf("expected a JSON array, got null")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after landmark array")
	}

	landmarks := make([]models.Landmark, 0, len(*records))
	seen := make(map[int]struct{}, len(*records))
	for i, rec := range *records {
		l, err := rec.toLandmark()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[l.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, l.ID)
		}
		seen[l.ID] = struct{}{}
		landmarks = append(landmarks, l)
	}
	return landmarks, nil
}

func (r landmarkRecord) toLandmark() (models.Landmark, error) {
	switch {
	case r.ID == nil:
		return models.Landmark{}, missing("id")
	case r.Name == nil:
		return models.Landmark{}, missing("name")
	case r.Park == nil:
		return models.Landmark{}, missing("park")
	case r.State == nil:
		return models.Landmark{}, missing("state")
	case r.Description == nil:
		return models.Landmark{}, missing("description")
	case r.IsFavorite == nil:
		return models.Landmark{}, missing("isFavorite")
	case r.ImageName == nil:
		return models.Landmark{}, missing("imageName")
	case r.Coordinates == nil:
		return models.Landmark{}, missing("coordinates")
	case r.Coordinates.Latitude == nil:
		return models.Landmark{}, missing("coordinates.latitude")
	case r.Coordinates.Longitude == nil:
		return models.Landmark{}, missing("coordinates.longitude")
	}

	return models.Landmark{
		ID:          *r.ID,
		Name:        *r.Name,
		Park:        *r.Park,
		State:       *r.State,
		Description: *r.Description,
		IsFavorite:  *r.IsFavorite,
		ImageName:   *r.ImageName,
		Coordinates: models.Coordinates{
			Latitude:  *r.Coordinates.Latitude,
			Longitude: *r.Coordinates.Longitude,
		},
	}, nil
}

func missing(field string) error {
	return fmt.Errorf("missing field %q", field)
}
