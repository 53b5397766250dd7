package service

import "restaurant-finder-api/internal/models"

const defaultPriceLevel = 1

// FilterPlaces keeps the places rated at least minRating, in provider order.
// A place without a rating never passes, whatever the threshold.
func FilterPlaces(raw []models.RawPlace, minRating float64) []models.PlaceRecord {
	records := make([]models.PlaceRecord, 0, len(raw))
	for _, p := range raw {
		if p.Rating == nil || *p.Rating < minRating {
			continue
		}
		records = append(records, Normalize(p))
	}
	return records
}

// Normalize projects a provider entry onto the display schema.
func Normalize(p models.RawPlace) models.PlaceRecord {
	record := models.PlaceRecord{
		Name:       p.Name,
		PriceLevel: defaultPriceLevel,
		Lat:        p.Geometry.Location.Lat,
		Lng:        p.Geometry.Location.Lng,
		PlaceID:    p.PlaceID,
		MapsURL:    models.MapsLink(p.PlaceID),
	}
	if p.Rating != nil {
		r := *p.Rating
		record.Rating = &r
	}
	if p.Vicinity != nil {
		record.Address = *p.Vicinity
	}
	if p.PriceLevel != nil {
		record.PriceLevel = *p.PriceLevel
	}
	return record
}
