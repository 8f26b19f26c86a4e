// File: internal/services/geocode/client.go
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/visionary-ai/medassist/internal/domain"
)

// Client talks to a Nominatim-format geocoding endpoint.
type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, &GeocodeError{Type: ErrTypeConfig, Operation: "new_client", Message: err.Error()}
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

type forwardResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type reverseResult struct {
	Address struct {
		Postcode string `json:"postcode"`
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
	} `json:"address"`
}

// Forward geocodes an address string to coordinates. The first candidate
// wins; zero candidates is a NOT_FOUND error.
func (c *Client) Forward(ctx context.Context, address string) (domain.Coordinates, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	var results []forwardResult
	if err := c.get(ctx, "/search", q, &results); err != nil {
		return domain.Coordinates{}, err
	}
	if len(results) == 0 {
		return domain.Coordinates{}, NewNotFoundError("forward", fmt.Sprintf("no coordinates for %q", address))
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return domain.Coordinates{}, NewNetworkError("forward", "unparseable coordinates in response", nil)
	}
	return domain.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// Reverse geocodes coordinates to a postal code and city label.
func (c *Client) Reverse(ctx context.Context, coords domain.Coordinates) (Place, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("format", "json")

	var result reverseResult
	if err := c.get(ctx, "/reverse", q, &result); err != nil {
		return Place{}, err
	}

	place := Place{
		PostalCode: result.Address.Postcode,
		City:       cityLabel(result.Address.City, result.Address.Town, result.Address.Village),
	}
	if place.PostalCode == "" && place.City == "" {
		return Place{}, NewNotFoundError("reverse", "no address components for coordinate")
	}
	return place, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.config.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return NewNetworkError("request", "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewNetworkError("request", "geocoding request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NewNetworkError("request", fmt.Sprintf("geocoding service returned status %d", resp.StatusCode), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewNetworkError("decode", "invalid geocoding response", err)
	}
	return nil
}

func cityLabel(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
