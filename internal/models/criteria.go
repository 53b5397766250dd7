package models

import (
	"fmt"
	"math"
	"strings"
)

// LocationMode selects how the search origin is obtained.
type LocationMode string

const (
	LocationManual    LocationMode = "manual"
	LocationDeviceGPS LocationMode = "gps"
)

// ParseLocationMode accepts the API value of a location mode.
func ParseLocationMode(s string) (LocationMode, error) {
	switch LocationMode(strings.ToLower(strings.TrimSpace(s))) {
	case LocationManual, "":
		return LocationManual, nil
	case LocationDeviceGPS:
		return LocationDeviceGPS, nil
	}
	return "", &ValidationError{Field: "mode", Message: fmt.Sprintf("unknown location mode %q", s)}
}

// MealTime is a coarse time-of-day tag appended to the search keyword.
type MealTime int

const (
	MealNone MealTime = iota
	MealBreakfast
	MealLunch
	MealDinner
	MealLateNight
	MealSnack
)

var mealTimes = []struct {
	name  string
	label string
}{
	MealNone:      {"none", "不限"},
	MealBreakfast: {"breakfast", "早餐"},
	MealLunch:     {"lunch", "午餐"},
	MealDinner:    {"dinner", "晚餐"},
	MealLateNight: {"late_night", "消夜"},
	MealSnack:     {"snack", "點心"},
}

// Label returns the locale label sent to the provider.
func (m MealTime) Label() string {
	if m < 0 || int(m) >= len(mealTimes) {
		return ""
	}
	return mealTimes[m].label
}

func (m MealTime) String() string {
	if m < 0 || int(m) >= len(mealTimes) {
		return fmt.Sprintf("MealTime(%d)", int(m))
	}
	return mealTimes[m].name
}

// ParseMealTime accepts either the English name or the locale label.
// An empty string means MealNone.
func ParseMealTime(s string) (MealTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MealNone, nil
	}
	for i, mt := range mealTimes {
		if strings.EqualFold(s, mt.name) || s == mt.label {
			return MealTime(i), nil
		}
	}
	return MealNone, &ValidationError{Field: "meal_time", Message: fmt.Sprintf("unknown meal time %q", s)}
}

// BudgetTier is the user-facing per-person budget label.
type BudgetTier string

const (
	Budget100  BudgetTier = "100"
	Budget300  BudgetTier = "300"
	Budget500  BudgetTier = "500"
	Budget1000 BudgetTier = "1000"
)

// RadiusOptions are the search radii offered to the user, in meters.
var RadiusOptions = []int{100, 500, 1000, 5000}

// ValidRadius reports whether r is one of RadiusOptions.
func ValidRadius(r int) bool {
	for _, opt := range RadiusOptions {
		if opt == r {
			return true
		}
	}
	return false
}

// Cuisines offered by the search form. Any other tag is passed through as free text.
var Cuisines = []string{"中餐", "西餐", "日式", "韓式", "泰式", "義式", "燒肉", "火鍋", "咖啡廳"}

// SearchCriteria is one submitted search. It is built per request and not modified afterwards.
type SearchCriteria struct {
	Mode         LocationMode
	Address      string
	DeviceCoords *Coordinates
	RadiusMeters int
	MealTime     MealTime
	Budget       BudgetTier
	Cuisines     []string
	MinRating    float64
}

// DefaultCriteria returns the form defaults.
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{
		Mode:         LocationManual,
		Address:      "台北車站",
		RadiusMeters: 1000,
		MealTime:     MealNone,
		Budget:       Budget500,
		Cuisines:     []string{"日式"},
		MinRating:    4.2,
	}
}

// Validate checks the fields a caller can get wrong. Budget tiers are checked by the query builder.
func (c SearchCriteria) Validate() error {
	if !ValidRadius(c.RadiusMeters) {
		return &ValidationError{Field: "radius", Message: fmt.Sprintf("radius must be one of %v", RadiusOptions)}
	}
	if math.IsNaN(c.MinRating) || c.MinRating < 0 || c.MinRating > 5 {
		return &ValidationError{Field: "min_rating", Message: "min_rating must be between 0 and 5"}
	}
	if c.MealTime < MealNone || c.MealTime > MealSnack {
		return &ValidationError{Field: "meal_time", Message: "unknown meal time"}
	}
	return nil
}
