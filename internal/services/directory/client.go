// File: internal/services/directory/client.go
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Client talks to an NPI-registry-format directory endpoint.
type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, &DirectoryError{Type: ErrTypeConfig, Operation: "new_client", Message: err.Error()}
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}, nil
}

// Search queries the directory by taxonomy description plus postal code or
// state code.
func (c *Client) Search(ctx context.Context, query Query) ([]Result, error) {
	if query.SpecialtyDescription == "" {
		return nil, NewValidationError("search", "specialty description is required")
	}
	if query.PostalCode == "" && query.StateCode == "" {
		return nil, NewValidationError("search", "either postal code or state code is required")
	}

	limit := query.Limit
	if limit <= 0 {
		limit = c.config.Limit
	}

	q := url.Values{}
	q.Set("version", "2.1")
	q.Set("taxonomy_description", query.SpecialtyDescription)
	q.Set("limit", strconv.Itoa(limit))
	if query.PostalCode != "" {
		q.Set("postal_code", query.PostalCode)
	} else {
		q.Set("state", query.StateCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.config.BaseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return nil, NewNetworkError("search", "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("search", "directory request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewNetworkError("search", fmt.Sprintf("directory service returned status %d", resp.StatusCode), nil)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, NewNetworkError("decode", "invalid directory response", err)
	}

	return decoded.Results, nil
}
