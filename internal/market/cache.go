package market

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTTL is how long a fetched snapshot stays fresh.
const DefaultTTL = time.Hour

// snapshot is the cached formatted price line plus its fetch time.
type snapshot struct {
	text      string
	fetchedAt time.Time
}

// Cache is a time-boxed read-through cache over one Quoter for one fixed
// asset. A failed refresh never overwrites a previously good snapshot;
// callers get "" and must treat it as "unavailable now".
type Cache struct {
	mu      sync.Mutex
	quoter  Quoter
	assetID string
	label   string // display name, e.g. "Dogecoin"
	ttl     time.Duration
	now     func() time.Time
	current snapshot
	log     *zerolog.Logger
}

func NewCache(quoter Quoter, assetID string, log *zerolog.Logger) *Cache {
	return &Cache{
		quoter:  quoter,
		assetID: assetID,
		label:   titleCase(assetID),
		ttl:     DefaultTTL,
		now:     time.Now,
		log:     log,
	}
}

// Snippet returns the cached price line when fresh, otherwise performs a
// single fetch. force skips the freshness check.
func (c *Cache) Snippet(ctx context.Context, force bool) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && c.current.text != "" && c.now().Sub(c.current.fetchedAt) < c.ttl {
		return c.current.text
	}

	quote, err := c.quoter.Fetch(ctx, c.assetID)
	if err != nil {
		c.log.Debug().Err(err).Str("asset", c.assetID).Msg("price fetch failed")
		return ""
	}

	text := FormatSnippet(c.label, quote)
	c.current = snapshot{text: text, fetchedAt: c.now()}
	return text
}

// FormatSnippet renders a quote as the one-line fact handed to both the
// price bubble and the completion prompt.
func FormatSnippet(label string, q Quote) string {
	if q.Change24h != nil {
		return fmt.Sprintf("%s price: $%.4f USD (24h %+.2f%%).", label, q.Price, *q.Change24h)
	}
	return fmt.Sprintf("%s price: $%.4f USD.", label, q.Price)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
