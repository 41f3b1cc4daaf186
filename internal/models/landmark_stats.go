package models

type LandmarkStats struct {
	TotalLandmarks int            `json:"totalLandmarks"`
	Favorites      int            `json:"favorites"`
	ByState        map[string]int `json:"byState"`
	ByPark         map[string]int `json:"byPark"`
}
