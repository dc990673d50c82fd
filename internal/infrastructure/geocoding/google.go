// Package geocoding resolves postal addresses to coordinates through the
// Google Geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"contacts-api/config"
)

const requestTimeout = 10 * time.Second

var (
	ErrAPIKeyMissing = errors.New("geocoding api key is not configured")
	ErrNoResults     = errors.New("no coordinates found for the given address")
)

type (
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	// response mirrors the slice of the Google payload we care about.
	response struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location Location `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	Client struct {
		logger  *zap.Logger
		apiKey  string
		baseURL string
		http    *http.Client
	}
)

func New(logger *zap.Logger, cfg config.Geocoding) *Client {
	return &Client{
		logger:  logger,
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Resolve geocodes a full address string. It fails when no API key is
// configured, on transport errors, on a non-OK upstream status and when the
// upstream returns no results.
func (c *Client) Resolve(ctx context.Context, address string) (Location, error) {
	if c.apiKey == "" {
		return Location{}, ErrAPIKeyMissing
	}

	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("build geocoding request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocoding api returned status %d", resp.StatusCode)
	}

	var body response
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, fmt.Errorf("decode geocoding response: %w", err)
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		c.logger.Warn("geocoding returned no usable result",
			zap.String("status", body.Status),
			zap.Int("results", len(body.Results)),
		)
		return Location{}, ErrNoResults
	}

	return body.Results[0].Geometry.Location, nil
}

// FormatAddress builds the single-line address the geocoder expects.
func FormatAddress(street, number, neighborhood, city, state, cep string) string {
	return fmt.Sprintf("%s, %s - %s, %s - %s, Brazil, %s",
		street, number, neighborhood, city, state, cep)
}
