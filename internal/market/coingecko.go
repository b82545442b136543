// Package market fetches and caches live price data for the pet's single
// tracked asset.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Quote is one market-data reading. Change24h is nil when the feed did not
// include a 24h change.
type Quote struct {
	Price     float64
	Change24h *float64
}

// Quoter fetches the current quote for an asset id.
type Quoter interface {
	Fetch(ctx context.Context, assetID string) (Quote, error)
}

const coingeckoBase = "https://api.coingecko.com/api/v3"

// Compile-time assurance the client satisfies the port
var _ Quoter = (*CoinGeckoClient)(nil)

// CoinGeckoClient fetches quotes from the public CoinGecko markets API.
type CoinGeckoClient struct {
	base   string
	client *http.Client
}

func NewCoinGeckoClient() *CoinGeckoClient {
	return &CoinGeckoClient{
		base:   coingeckoBase,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// NewCoinGeckoClientWithBase is used by tests to point at a local server.
func NewCoinGeckoClientWithBase(base string) *CoinGeckoClient {
	c := NewCoinGeckoClient()
	c.base = base
	return c
}

func (c *CoinGeckoClient) Fetch(ctx context.Context, assetID string) (Quote, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("ids", assetID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/coins/markets?"+q.Encode(), nil)
	if err != nil {
		return Quote{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("coingecko request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("coingecko http %d", resp.StatusCode)
	}

	var payload []struct {
		CurrentPrice             *float64 `json:"current_price"`
		PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Quote{}, fmt.Errorf("coingecko decode failed: %w", err)
	}
	if len(payload) == 0 || payload[0].CurrentPrice == nil {
		return Quote{}, fmt.Errorf("coingecko returned no quote for %q", assetID)
	}

	return Quote{
		Price:     *payload[0].CurrentPrice,
		Change24h: payload[0].PriceChangePercentage24h,
	}, nil
}
