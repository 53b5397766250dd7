package service

import (
	"context"
	"fmt"

	"restaurant-finder-api/internal/models"

	"github.com/rs/zerolog"
)

// PlacesSearcher runs the provider's nearby search
type PlacesSearcher interface {
	NearbySearch(ctx context.Context, origin models.Coordinates, radiusMeters int, query models.ProviderQuery) ([]models.RawPlace, error)
}

// LocationResolver resolves the origin of a search
type LocationResolver interface {
	Resolve(ctx context.Context, criteria models.SearchCriteria) (*models.Coordinates, error)
}

// SearchService runs the search pipeline: resolve, build the query, search, filter.
type SearchService struct {
	resolver LocationResolver
	searcher PlacesSearcher
	language string
	logger   zerolog.Logger
}

// NewSearchService creates a search service. language is sent with every provider query.
func NewSearchService(resolver LocationResolver, searcher PlacesSearcher, language string, logger zerolog.Logger) *SearchService {
	return &SearchService{
		resolver: resolver,
		searcher: searcher,
		language: language,
		logger:   logger,
	}
}

// Search runs one search. An empty result is not an error; check SearchResult.Empty.
func (s *SearchService) Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	query, err := BuildQuery(criteria, s.language)
	if err != nil {
		return nil, err
	}

	origin, err := s.resolver.Resolve(ctx, criteria)
	if err != nil {
		return nil, err
	}

	raw, err := s.searcher.NearbySearch(ctx, *origin, criteria.RadiusMeters, query)
	if err != nil {
		return nil, fmt.Errorf("service: nearby search failed: %w", err)
	}

	places := FilterPlaces(raw, criteria.MinRating)
	s.logger.Info().
		Str("keyword", query.Keyword).
		Int("max_price", query.MaxPrice).
		Int("raw", len(raw)).
		Int("kept", len(places)).
		Float64("min_rating", criteria.MinRating).
		Msg("search completed")

	return &models.SearchResult{
		Origin: *origin,
		Query:  query,
		Places: places,
	}, nil
}
