package pet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoshinoya/dogepet/internal/logging"
	"github.com/hoshinoya/dogepet/internal/models"
)

func testAnchor() models.Frame {
	return models.Frame{
		Origin: models.Point{X: 40, Y: 20},
		Size:   models.Size{W: 10, H: 5},
	}
}

func newTestBubbles(sched Scheduler, factory SurfaceFactory) *BubbleManager {
	return NewBubbleManager(sched, factory, logging.Nop())
}

func TestBubbleManager_PricePlacement(t *testing.T) {
	m := newTestBubbles(&fakeScheduler{}, nil)
	anchor := testAnchor()

	_, ok := m.Create(models.BubblePrice, "much price", anchor)
	require.True(t, ok)

	scene := m.Scene()
	require.Len(t, scene, 1)
	b := scene[0]

	assert.Equal(t, anchor.Right()+bubbleGapX, b.Frame.Origin.X)
	assert.Equal(t, anchor.Origin.Y+(anchor.Size.H-b.Frame.Size.H)/2, b.Frame.Origin.Y)
}

func TestBubbleManager_ChatPlacement(t *testing.T) {
	m := newTestBubbles(&fakeScheduler{}, nil)
	anchor := testAnchor()

	_, ok := m.Create(models.BubbleChat, "wow", anchor)
	require.True(t, ok)

	b := m.Scene()[0]
	assert.Equal(t, anchor.Origin.X+(anchor.Size.W-b.Frame.Size.W)/2, b.Frame.Origin.X)
	assert.Equal(t, anchor.Origin.Y-b.Frame.Size.H-bubbleGapY, b.Frame.Origin.Y)
}

func TestBubbleManager_SecondPriceBubbleSuppressed(t *testing.T) {
	m := newTestBubbles(&fakeScheduler{}, nil)

	_, ok := m.Create(models.BubblePrice, "first", testAnchor())
	require.True(t, ok)

	_, ok = m.Create(models.BubblePrice, "second", testAnchor())
	assert.False(t, ok)
	assert.Equal(t, 1, m.Count())
}

func TestBubbleManager_TTLExpiry(t *testing.T) {
	sched := &fakeScheduler{}
	m := newTestBubbles(sched, nil)

	m.Create(models.BubbleChat, "hi", testAnchor())
	m.Create(models.BubblePrice, "price", testAnchor())

	sched.Advance(priceTTL)
	assert.False(t, m.Has(models.BubblePrice))
	assert.True(t, m.Has(models.BubbleChat))

	sched.Advance(chatTTL - priceTTL)
	assert.Equal(t, 0, m.Count())
}

func TestBubbleManager_InputBubbleHasNoTTL(t *testing.T) {
	sched := &fakeScheduler{}
	m := newTestBubbles(sched, nil)

	m.Create(models.BubbleInput, "", testAnchor())
	sched.Advance(time.Hour)
	assert.True(t, m.Has(models.BubbleInput))
}

func TestBubbleManager_ChatCloseNotifies(t *testing.T) {
	sched := &fakeScheduler{}
	m := newTestBubbles(sched, nil)

	closed := 0
	m.OnChatClosed(func() { closed++ })

	id, _ := m.Create(models.BubbleChat, "hi", testAnchor())
	m.Close(id)
	assert.Equal(t, 1, closed)

	// price bubbles do not trigger the hook
	id, _ = m.Create(models.BubblePrice, "price", testAnchor())
	m.Close(id)
	assert.Equal(t, 1, closed)
}

func TestBubbleManager_TTLCancelledOnManualClose(t *testing.T) {
	sched := &fakeScheduler{}
	m := newTestBubbles(sched, nil)

	closed := 0
	m.OnChatClosed(func() { closed++ })

	id, _ := m.Create(models.BubbleChat, "hi", testAnchor())
	m.Close(id)
	sched.Advance(chatTTL)
	assert.Equal(t, 1, closed, "expired timer must not close the bubble twice")
}

func TestBubbleManager_DeadSurfaceEvicted(t *testing.T) {
	sched := &fakeScheduler{}
	surfaces := make(map[string]*sceneSurface)
	factory := func(kind models.BubbleKind, text string, frame models.Frame) Surface {
		s := &sceneSurface{}
		surfaces[text] = s
		return s
	}
	m := newTestBubbles(sched, factory)

	closed := 0
	m.OnChatClosed(func() { closed++ })

	m.Create(models.BubbleChat, "doomed", testAnchor())
	require.Equal(t, 1, m.Count())

	// the surface dies externally; reposition discovers and evicts it
	surfaces["doomed"].closed = true
	m.Reposition(testAnchor())

	assert.Equal(t, 0, m.Count())
	assert.Equal(t, 0, closed, "eviction is not a chat conclusion")
}

func TestBubbleManager_RepositionFollowsAnchor(t *testing.T) {
	m := newTestBubbles(&fakeScheduler{}, nil)

	m.Create(models.BubblePrice, "price", testAnchor())

	moved := testAnchor().Offset(7, -3)
	m.Reposition(moved)

	b := m.Scene()[0]
	assert.Equal(t, moved.Right()+bubbleGapX, b.Frame.Origin.X)
}
