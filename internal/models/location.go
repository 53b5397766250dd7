package models

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeocodeCandidate is a single match returned by a geocoder for an address query.
type GeocodeCandidate struct {
	Address  string      `json:"address"`
	Location Coordinates `json:"location"`
}
