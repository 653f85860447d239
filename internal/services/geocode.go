package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/daybook-app/backend/internal/database"
	"github.com/daybook-app/backend/internal/models"
)

const geocodeBaseURL = "https://maps.googleapis.com/maps/api"

// ErrNoResults is returned when the geocoder finds nothing for a query.
var ErrNoResults = errors.New("no geocoding results")

// GeocodeClient calls the Google Geocoding API over HTTP.
type GeocodeClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewGeocodeClient(apiKey string) *GeocodeClient {
	return &GeocodeClient{
		baseURL:    geocodeBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// NewGeocodeClientWithBaseURL is used by tests to point at a fake upstream.
func NewGeocodeClientWithBaseURL(baseURL, apiKey string) *GeocodeClient {
	c := NewGeocodeClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Configured reports whether an API key is present.
func (c *GeocodeClient) Configured() bool {
	return c.apiKey != ""
}

// Search geocodes a free-text query into a Location.
func (c *GeocodeClient) Search(query string) (*models.Location, error) {
	geocodeURL := fmt.Sprintf("%s/geocode/json?address=%s&key=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	resp, err := c.httpClient.Get(geocodeURL)
	if err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResp(resp, "geocode"); err != nil {
		return nil, err
	}

	var result struct {
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
			AddressComponents []struct {
				ShortName string `json:"short_name"`
			} `json:"address_components"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("geocode: decode: %w", err)
	}

	if len(result.Results) == 0 {
		return nil, ErrNoResults
	}

	first := result.Results[0]
	location := &models.Location{
		FormattedQuery: first.FormattedAddress,
		Latitude:       first.Geometry.Location.Lat,
		Longitude:      first.Geometry.Location.Lng,
	}
	if len(first.AddressComponents) > 0 {
		location.ShortName = first.AddressComponents[0].ShortName
	}
	return location, nil
}

// SaveLocation persists a geocoding result for later reuse.
func SaveLocation(query string, loc *models.Location) error {
	_, err := database.PostgresDB.Exec(`
		INSERT INTO locations (search_query, formatted_query, latitude, longitude, short_name)
		VALUES ($1, $2, $3, $4, $5)
	`, query, loc.FormattedQuery, loc.Latitude, loc.Longitude, loc.ShortName)
	return err
}
