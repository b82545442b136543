package market

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshinoya/dogepet/internal/logging"
)

type fakeQuoter struct {
	quote Quote
	err   error
	calls int
}

func (q *fakeQuoter) Fetch(ctx context.Context, assetID string) (Quote, error) {
	q.calls++
	return q.quote, q.err
}

func change(v float64) *float64 { return &v }

func newTestCache(q Quoter) (*Cache, *time.Time) {
	c := NewCache(q, "dogecoin", logging.Nop())
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCache_FreshSnapshotServedWithoutFetch(t *testing.T) {
	q := &fakeQuoter{quote: Quote{Price: 0.1234, Change24h: change(2.5)}}
	c, now := newTestCache(q)

	first := c.Snippet(context.Background(), false)
	assert.Equal(t, "Dogecoin price: $0.1234 USD (24h +2.50%).", first)
	assert.Equal(t, 1, q.calls)

	*now = now.Add(30 * time.Minute)
	second := c.Snippet(context.Background(), false)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, q.calls, "a fresh snapshot must not refetch")
}

func TestCache_ExpiredSnapshotRefetches(t *testing.T) {
	q := &fakeQuoter{quote: Quote{Price: 0.1}}
	c, now := newTestCache(q)

	c.Snippet(context.Background(), false)
	*now = now.Add(DefaultTTL + time.Minute)

	q.quote = Quote{Price: 0.2}
	got := c.Snippet(context.Background(), false)
	assert.Equal(t, "Dogecoin price: $0.2000 USD.", got)
	assert.Equal(t, 2, q.calls)
}

func TestCache_ForceBypassesFreshness(t *testing.T) {
	q := &fakeQuoter{quote: Quote{Price: 0.1}}
	c, _ := newTestCache(q)

	c.Snippet(context.Background(), false)
	c.Snippet(context.Background(), true)
	assert.Equal(t, 2, q.calls)
}

func TestCache_FailedRefreshKeepsOldSnapshot(t *testing.T) {
	q := &fakeQuoter{quote: Quote{Price: 0.1}}
	c, now := newTestCache(q)

	good := c.Snippet(context.Background(), false)
	require.NotEmpty(t, good)

	*now = now.Add(DefaultTTL + time.Minute)
	q.err = errors.New("feed down")

	assert.Empty(t, c.Snippet(context.Background(), false), "a failed fetch reports unavailable")

	// feed recovers before the snapshot was ever overwritten
	q.err = nil
	q.quote = Quote{Price: 0.3}
	assert.Equal(t, "Dogecoin price: $0.3000 USD.", c.Snippet(context.Background(), false))
}

func TestCache_FirstFetchFailure(t *testing.T) {
	q := &fakeQuoter{err: errors.New("feed down")}
	c, _ := newTestCache(q)

	assert.Empty(t, c.Snippet(context.Background(), false))
}

func TestFormatSnippet(t *testing.T) {
	withChange := FormatSnippet("Dogecoin", Quote{Price: 0.08123, Change24h: change(-3.2)})
	assert.Equal(t, "Dogecoin price: $0.0812 USD (24h -3.20%).", withChange)

	withoutChange := FormatSnippet("Dogecoin", Quote{Price: 0.08123})
	assert.Equal(t, "Dogecoin price: $0.0812 USD.", withoutChange)
}
