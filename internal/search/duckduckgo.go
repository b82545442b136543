// Package search provides the best-effort web snippet used to enrich
// completion prompts. Failures degrade to an empty snippet; nothing here
// ever returns an error to the conversation pipeline.
package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	duckduckgoBase = "https://api.duckduckgo.com"

	// SnippetLimit bounds the snippet so the prompt stays small.
	SnippetLimit = 700
)

// Provider returns a short factual snippet for a query, or "".
type Provider interface {
	Query(ctx context.Context, text string) string
}

// Compile-time assurance the client satisfies the port
var _ Provider = (*DuckDuckGoClient)(nil)

// DuckDuckGoClient queries the public instant-answer API.
type DuckDuckGoClient struct {
	base   string
	client *http.Client
	log    *zerolog.Logger
}

func NewDuckDuckGoClient(log *zerolog.Logger) *DuckDuckGoClient {
	return &DuckDuckGoClient{
		base:   duckduckgoBase,
		client: &http.Client{Timeout: 5 * time.Second},
		log:    log,
	}
}

// NewDuckDuckGoClientWithBase is used by tests to point at a local server.
func NewDuckDuckGoClientWithBase(base string, log *zerolog.Logger) *DuckDuckGoClient {
	c := NewDuckDuckGoClient(log)
	c.base = base
	return c
}

func (c *DuckDuckGoClient) Query(ctx context.Context, text string) string {
	q := url.Values{}
	q.Set("q", text)
	q.Set("format", "json")
	q.Set("no_html", "1")
	q.Set("t", "dogepet")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/?"+q.Encode(), nil)
	if err != nil {
		return ""
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Msg("search request failed")
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.log.Debug().Int("status", resp.StatusCode).Msg("search returned non-200")
		return ""
	}

	var payload struct {
		AbstractText string `json:"AbstractText"`
		Heading      string `json:"Heading"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Debug().Err(err).Msg("search decode failed")
		return ""
	}

	snippet := payload.AbstractText
	if snippet == "" {
		snippet = payload.Heading
	}
	if len(snippet) > SnippetLimit {
		snippet = snippet[:SnippetLimit]
	}
	return snippet
}
