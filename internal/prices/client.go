// Package prices provides a client for an external fuel price feed. The feed
// is optional: when unconfigured, stations are served without prices.
package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/stationfinder/stationfinder/internal/resilience"
	"github.com/stationfinder/stationfinder/internal/station"
)

// FeedName identifies this provider.
const FeedName = "fuel-prices"

// ClientConfig holds configuration for the price feed client.
type ClientConfig struct {
	// BaseURL is the feed base URL. Required.
	BaseURL string

	// APIKey is sent as X-Api-Key when set.
	APIKey string

	// HTTPClient is the HTTP client to use (must implement HTTPDoer).
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual feed requests (default: 10s).
	Timeout time.Duration
}

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a fuel price feed client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPDoer
}

// NewClient creates a new price feed client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:            FeedName,
			Timeout:         timeout,
			MaxRetries:      3,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		})
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
}

// Feed response types.

type nearbyResponse struct {
	Prices []priceData `json:"prices"`
}

type priceData struct {
	Fuel  string  `json:"fuel"`
	Price float64 `json:"price"`
}

// Nearby retrieves current pump prices near a point. Fuel labels from the
// feed are canonicalized so keys line up with shaped station fuels.
func (c *Client) Nearby(ctx context.Context, lat, lng float64) (map[string]float64, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))

	endpoint := fmt.Sprintf("%s/v1/prices?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch prices: unexpected status %d", resp.StatusCode)
	}

	var body nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode prices: %w", err)
	}

	prices := make(map[string]float64, len(body.Prices))
	for _, p := range body.Prices {
		prices[station.CanonicalFuel(p.Fuel)] = p.Price
	}
	return prices, nil
}

// Ensure Client implements the service's price source interface.
var _ station.PriceSource = (*Client)(nil)
