package service

import (
	"fmt"
	"strings"

	"restaurant-finder-api/internal/models"
)

// priceLevels maps budget tiers onto the provider's 0-4 price scale.
var priceLevels = map[models.BudgetTier]int{
	models.Budget100:  1,
	models.Budget300:  2,
	models.Budget500:  3,
	models.Budget1000: 4,
}

// MaxPrice returns the provider price ceiling for a budget tier.
func MaxPrice(tier models.BudgetTier) (int, error) {
	level, ok := priceLevels[tier]
	if !ok {
		return 0, fmt.Errorf("service: %q: %w", string(tier), models.ErrInvalidBudget)
	}
	return level, nil
}

// Keyword joins the cuisine tags in order, followed by the meal time label unless it is MealNone.
func Keyword(cuisines []string, meal models.MealTime) string {
	parts := make([]string, 0, len(cuisines)+1)
	parts = append(parts, cuisines...)
	if meal != models.MealNone {
		parts = append(parts, meal.Label())
	}
	return strings.Join(parts, " ")
}

// BuildQuery maps criteria to provider parameters.
func BuildQuery(criteria models.SearchCriteria, language string) (models.ProviderQuery, error) {
	maxPrice, err := MaxPrice(criteria.Budget)
	if err != nil {
		return models.ProviderQuery{}, err
	}

	return models.ProviderQuery{
		Keyword:  Keyword(criteria.Cuisines, criteria.MealTime),
		MaxPrice: maxPrice,
		Type:     models.PlaceType,
		Language: language,
	}, nil
}
