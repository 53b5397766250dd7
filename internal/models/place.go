package models

import (
	"net/url"
	"strconv"
)

// PlaceType is the provider category every search is restricted to.
const PlaceType = "restaurant"

// UnknownRating is displayed for a record without a rating.
const UnknownRating = "unknown"

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query=Google&query_place_id="

// ProviderQuery holds the provider parameters derived from SearchCriteria.
type ProviderQuery struct {
	Keyword  string `json:"keyword"`
	MaxPrice int    `json:"max_price"`
	Type     string `json:"type"`
	Language string `json:"language"`
}

// RawPlace is one nearby-search entry as the provider returns it.
type RawPlace struct {
	Name       string   `json:"name"`
	Rating     *float64 `json:"rating,omitempty"`
	Vicinity   *string  `json:"vicinity,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
	Geometry   struct {
		Location Coordinates `json:"location"`
	} `json:"geometry"`
	PlaceID string `json:"place_id"`
}

// PlaceRecord is a result in display form.
type PlaceRecord struct {
	Name       string   `json:"name"`
	Rating     *float64 `json:"rating"`
	Address    string   `json:"address"`
	PriceLevel int      `json:"price_level"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	PlaceID    string   `json:"place_id"`
	MapsURL    string   `json:"maps_url"`
}

// RatingLabel formats the rating, or UnknownRating when absent.
func (p PlaceRecord) RatingLabel() string {
	if p.Rating == nil {
		return UnknownRating
	}
	return strconv.FormatFloat(*p.Rating, 'f', 1, 64)
}

// MapsLink builds the Google Maps deep link for a place id.
func MapsLink(placeID string) string {
	return mapsSearchURL + url.QueryEscape(placeID)
}

// SearchResult is the filtered outcome of one search, in provider order.
type SearchResult struct {
	Origin Coordinates   `json:"origin"`
	Query  ProviderQuery `json:"query"`
	Places []PlaceRecord `json:"places"`
}

// Empty reports whether no place survived filtering.
func (r *SearchResult) Empty() bool {
	return r == nil || len(r.Places) == 0
}
