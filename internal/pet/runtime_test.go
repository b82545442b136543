package pet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hoshinoya/dogepet/internal/eventbus"
	"github.com/hoshinoya/dogepet/internal/logging"
	"github.com/hoshinoya/dogepet/internal/models"
)

func newTestRuntime(price *stubPrice, chat *stubCompleter) (*Runtime, *eventbus.EventBus) {
	bus := eventbus.NewEventBus()
	r := NewRuntime(Options{
		Bus:         bus,
		Assets:      allStateAssets(),
		Search:      &stubSearch{},
		Price:       price,
		Completer:   chat,
		Credentials: &stubGate{allow: true},
		HistoryCap:  DefaultHistoryCap,
		Log:         logging.Nop(),
	})
	return r, bus
}

func waitForScene(t *testing.T, bus *eventbus.EventBus, pred func(models.Scene) bool) models.Scene {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-bus.CoreToUI():
			require.True(t, ok, "bus closed while waiting for scene")
			if s, isScene := ev.(eventbus.SceneUpdateEvent); isScene && pred(s.Scene) {
				return s.Scene
			}
		case <-deadline:
			t.Fatal("timeout waiting for scene")
		}
	}
}

func hasBubble(s models.Scene, kind models.BubbleKind) bool {
	for _, b := range s.Bubbles {
		if b.Kind == kind {
			return true
		}
	}
	return false
}

func TestRuntime_ClickShowsPriceBubble(t *testing.T) {
	defer goleak.VerifyNone(t)

	price := &stubPrice{snippet: "Dogecoin price: $0.1000 USD (24h +1.00%)."}
	r, bus := newTestRuntime(price, &stubCompleter{reply: "ok <mood:HAPPY>"})
	r.Start()
	defer func() {
		r.Stop()
		bus.Close()
	}()

	require.NoError(t, bus.SendToCore(eventbus.ResizeEvent{Size: models.Size{W: 120, H: 40}}))
	require.NoError(t, bus.SendToCore(eventbus.PointerEvent{Kind: eventbus.PointerClick}))

	scene := waitForScene(t, bus, func(s models.Scene) bool {
		return hasBubble(s, models.BubblePrice)
	})

	for _, b := range scene.Bubbles {
		if b.Kind == models.BubblePrice {
			assert.Equal(t, price.snippet, b.Text)
		}
	}
}

func TestRuntime_DoubleClickRunsAConversation(t *testing.T) {
	defer goleak.VerifyNone(t)

	chat := &stubCompleter{reply: "Very chat! <mood:WOW>"}
	r, bus := newTestRuntime(&stubPrice{snippet: "Dogecoin price: $0.1000 USD."}, chat)
	r.Start()
	defer func() {
		r.Stop()
		bus.Close()
	}()

	require.NoError(t, bus.SendToCore(eventbus.ResizeEvent{Size: models.Size{W: 120, H: 40}}))
	require.NoError(t, bus.SendToCore(eventbus.PointerEvent{Kind: eventbus.PointerDoubleClick}))

	waitForScene(t, bus, func(s models.Scene) bool { return s.InputOpen })

	require.NoError(t, bus.SendToCore(eventbus.SubmitInputEvent{Text: "hello"}))

	scene := waitForScene(t, bus, func(s models.Scene) bool {
		return hasBubble(s, models.BubbleChat)
	})
	for _, b := range scene.Bubbles {
		if b.Kind == models.BubbleChat {
			assert.Equal(t, "Very chat!", b.Text)
		}
	}
	assert.False(t, scene.InputOpen)
}

func TestRuntime_DragMovesAnchor(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, bus := newTestRuntime(&stubPrice{}, &stubCompleter{})
	r.Start()
	defer func() {
		r.Stop()
		bus.Close()
	}()

	require.NoError(t, bus.SendToCore(eventbus.ResizeEvent{Size: models.Size{W: 120, H: 40}}))

	// first resize centers the sprite
	start := waitForScene(t, bus, func(s models.Scene) bool {
		return s.Anchor.Origin.X == (120-anchorWidth)/2
	})

	require.NoError(t, bus.SendToCore(eventbus.PointerEvent{Kind: eventbus.PointerDrag, DX: 5, DY: 2}))

	want := start.Anchor.Origin
	want.X += 5
	want.Y += 2
	waitForScene(t, bus, func(s models.Scene) bool {
		return s.Anchor.Origin == want
	})
}

func TestRuntime_RightClickRequestsShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, bus := newTestRuntime(&stubPrice{}, &stubCompleter{})
	r.Start()
	defer func() {
		r.Stop()
		bus.Close()
	}()

	require.NoError(t, bus.SendToCore(eventbus.PointerEvent{Kind: eventbus.PointerRightClick}))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-bus.CoreToUI():
			require.True(t, ok)
			if _, isShutdown := ev.(eventbus.ShutdownEvent); isShutdown {
				return
			}
		case <-deadline:
			t.Fatal("timeout waiting for shutdown event")
		}
	}
}
