package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/daybook-app/backend/internal/models"
)

// checkResp reads the response body and returns an error if the status is not 2xx.
// On error it includes the upstream body for debugging.
func checkResp(resp *http.Response, service string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%s returned %d: %s", service, resp.StatusCode, string(body))
}

const nutritionixBaseURL = "https://api.nutritionix.com/v1_1"

// NutritionClient calls the Nutritionix food search API over HTTP.
type NutritionClient struct {
	baseURL    string
	appID      string
	apiKey     string
	httpClient *http.Client
}

func NewNutritionClient(appID, apiKey string) *NutritionClient {
	return &NutritionClient{
		baseURL:    nutritionixBaseURL,
		appID:      appID,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// NewNutritionClientWithBaseURL is used by tests to point at a fake upstream.
func NewNutritionClientWithBaseURL(baseURL, appID, apiKey string) *NutritionClient {
	c := NewNutritionClient(appID, apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Configured reports whether API credentials are present.
func (c *NutritionClient) Configured() bool {
	return c.appID != "" && c.apiKey != ""
}

// Search calls GET /search/{query} and shapes the hits into Food records.
func (c *NutritionClient) Search(query string) ([]models.Food, error) {
	searchURL := fmt.Sprintf("%s/search/%s?appId=%s&appKey=%s",
		c.baseURL, url.PathEscape(query), url.QueryEscape(c.appID), url.QueryEscape(c.apiKey))

	resp, err := c.httpClient.Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("nutritionix search: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResp(resp, "nutritionix"); err != nil {
		return nil, err
	}

	var result struct {
		Hits []struct {
			Fields struct {
				ItemName  string `json:"item_name"`
				BrandName string `json:"brand_name"`
			} `json:"fields"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("nutritionix search: decode: %w", err)
	}

	foods := make([]models.Food, 0, len(result.Hits))
	for _, hit := range result.Hits {
		foods = append(foods, models.Food{
			Name:  hit.Fields.ItemName,
			Brand: hit.Fields.BrandName,
		})
	}
	return foods, nil
}
