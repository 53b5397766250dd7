// Package places talks to the Google Maps geocoding and nearby-search APIs.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"restaurant-finder-api/internal/models"

	"github.com/rs/zerolog"
)

const (
	geocodePath      = "/maps/api/geocode/json"
	nearbySearchPath = "/maps/api/place/nearbysearch/json"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client is a Google Maps web-service client. It is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for baseURL. timeout bounds every provider call.
func NewClient(apiKey, baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, models.ErrMissingCredential
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type geocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location models.Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

type nearbySearchResponse struct {
	Results       []models.RawPlace `json:"results"`
	NextPageToken string            `json:"next_page_token"`
	Status        string            `json:"status"`
	ErrorMessage  string            `json:"error_message"`
}

// Geocode returns the provider's candidates for address, best match first.
func (c *Client) Geocode(ctx context.Context, address string) ([]models.GeocodeCandidate, error) {
	params := url.Values{}
	params.Set("address", address)

	var result geocodeResponse
	if err := c.get(ctx, "geocode", geocodePath, params, &result); err != nil {
		return nil, err
	}
	if err := checkStatus("geocode", result.Status, result.ErrorMessage); err != nil {
		return nil, err
	}

	candidates := make([]models.GeocodeCandidate, 0, len(result.Results))
	for _, r := range result.Results {
		candidates = append(candidates, models.GeocodeCandidate{
			Address:  r.FormattedAddress,
			Location: r.Geometry.Location,
		})
	}

	c.logger.Debug().Str("address", address).Int("candidates", len(candidates)).Msg("geocoded address")
	return candidates, nil
}

// NearbySearch issues one nearby-search request and returns the first page of results.
// Further pages are never fetched.
func (c *Client) NearbySearch(ctx context.Context, origin models.Coordinates, radiusMeters int, query models.ProviderQuery) ([]models.RawPlace, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%.6f,%.6f", origin.Lat, origin.Lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	if query.Keyword != "" {
		params.Set("keyword", query.Keyword)
	}
	params.Set("type", query.Type)
	params.Set("maxprice", strconv.Itoa(query.MaxPrice))
	if query.Language != "" {
		params.Set("language", query.Language)
	}

	var result nearbySearchResponse
	if err := c.get(ctx, "nearby search", nearbySearchPath, params, &result); err != nil {
		return nil, err
	}
	if err := checkStatus("nearby search", result.Status, result.ErrorMessage); err != nil {
		return nil, err
	}
	if result.NextPageToken != "" {
		c.logger.Debug().Int("results", len(result.Results)).Msg("provider has more pages; only the first page is used")
	}

	c.logger.Info().
		Float64("lat", origin.Lat).
		Float64("lng", origin.Lng).
		Int("radius", radiusMeters).
		Str("keyword", query.Keyword).
		Int("results", len(result.Results)).
		Msg("nearby search completed")

	if result.Results == nil {
		return []models.RawPlace{}, nil
	}
	return result.Results, nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &models.ProviderError{Operation: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.ProviderError{Operation: op, Err: fmt.Errorf("failed to call Google Maps API: %w", stripKey(err, c.apiKey))}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &models.ProviderError{Operation: op, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &models.ProviderError{Operation: op, Err: fmt.Errorf("failed to parse Google Maps response: %w", err)}
	}
	return nil
}

func checkStatus(op, status, message string) error {
	switch status {
	case statusOK, statusZeroResults:
		return nil
	}
	if message == "" {
		message = "provider returned status " + status
	}
	return &models.ProviderError{Operation: op, Status: status, Message: message}
}

// stripKey keeps the API key out of transport errors, which embed the request URL.
func stripKey(err error, key string) error {
	msg := err.Error()
	if !strings.Contains(msg, key) {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(msg, key, "REDACTED"))
}
