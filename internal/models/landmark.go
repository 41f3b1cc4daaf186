package models

import "time"

// DefaultSpan is the latitude/longitude delta a map widget shows around a landmark.
const DefaultSpan = 0.2

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Landmark is one record of the bundled landmark asset. Only IsFavorite
// changes after load.
type Landmark struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Park        string      `json:"park"`
	State       string      `json:"state"`
	Description string      `json:"description"`
	IsFavorite  bool        `json:"isFavorite"`
	ImageName   string      `json:"imageName"`
	Coordinates Coordinates `json:"coordinates"`
}

type Span struct {
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// Region is the initial viewport handed to a map widget.
type Region struct {
	Center Coordinates `json:"center"`
	Span   Span        `json:"span"`
}

func RegionAround(c Coordinates) Region {
	return Region{
		Center: c,
		Span:   Span{LatitudeDelta: DefaultSpan, LongitudeDelta: DefaultSpan},
	}
}

type LandmarkDetail struct {
	Landmark
	Region Region `json:"region"`
}

// FavoriteChange is returned by every favorite mutation so the caller can
// decide whether to refresh.
type FavoriteChange struct {
	Landmark  Landmark  `json:"landmark"`
	Previous  bool      `json:"previous"`
	ChangedAt time.Time `json:"changedAt"`
}

func (c FavoriteChange) Changed() bool {
	return c.Previous != c.Landmark.IsFavorite
}
