package dto

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type DistanceRequest struct {
	Origin      Coordinates `json:"origin"`
	Destination Coordinates `json:"destination"`
}

type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
	Strategy   string  `json:"strategy"`
}

type StrategyRequest struct {
	Strategy string `json:"strategy"`
}

type StrategyResponse struct {
	Strategy string `json:"strategy"`
}
