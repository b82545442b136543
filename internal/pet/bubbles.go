package pet

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hoshinoya/dogepet/internal/models"
)

// Surface is the underlying popup window a bubble draws on. The scene-based
// frontend uses a trivial implementation; a native frontend would hand out
// real floating windows here.
type Surface interface {
	Alive() bool
	SetFrame(models.Frame)
	Close()
}

// SurfaceFactory creates the surface for a freshly registered bubble.
type SurfaceFactory func(kind models.BubbleKind, text string, frame models.Frame) Surface

// sceneSurface backs bubbles that are drawn straight from the scene
// snapshot; it only tracks liveness.
type sceneSurface struct {
	closed bool
}

func (s *sceneSurface) Alive() bool           { return !s.closed }
func (s *sceneSurface) SetFrame(models.Frame) {}
func (s *sceneSurface) Close()                { s.closed = true }

func newSceneSurface(models.BubbleKind, string, models.Frame) Surface {
	return &sceneSurface{}
}

const (
	chatTTL  = 4 * time.Second
	priceTTL = 3500 * time.Millisecond

	bubbleGapY = 1 // rows between anchor top and a bubble above it
	bubbleGapX = 2 // columns between anchor and the price bubble
)

var bubbleSizes = map[models.BubbleKind]models.Size{
	models.BubbleChat:  {W: 28, H: 6},
	models.BubblePrice: {W: 30, H: 3},
	models.BubbleInput: {W: 30, H: 3},
}

var bubbleTTLs = map[models.BubbleKind]time.Duration{
	models.BubbleChat:  chatTTL,
	models.BubblePrice: priceTTL,
	// input bubbles live until submitted or dismissed
}

type bubble struct {
	id      string
	kind    models.BubbleKind
	text    string
	size    models.Size
	frame   models.Frame
	surface Surface
	ttl     Handle
}

// BubbleManager is the owning registry of live popups, keyed by id. It
// computes every bubble's position from the anchor frame; positions are
// derived state and recomputed on each reposition pass. All methods run on
// the runtime goroutine.
type BubbleManager struct {
	sched   Scheduler
	factory SurfaceFactory
	log     *zerolog.Logger

	bubbles map[string]*bubble
	order   []string // creation order, for stable rendering

	// onChatClosed fires whenever a chat bubble leaves the screen via
	// Close; chat conclusion resumes the idle/price cadence.
	onChatClosed func()
}

func NewBubbleManager(sched Scheduler, factory SurfaceFactory, log *zerolog.Logger) *BubbleManager {
	if factory == nil {
		factory = newSceneSurface
	}
	return &BubbleManager{
		sched:   sched,
		factory: factory,
		log:     log,
		bubbles: make(map[string]*bubble),
	}
}

func (m *BubbleManager) OnChatClosed(fn func()) {
	m.onChatClosed = fn
}

// Create registers a new bubble positioned against anchor and arms its
// auto-close timer. A second live price bubble is suppressed.
func (m *BubbleManager) Create(kind models.BubbleKind, text string, anchor models.Frame) (string, bool) {
	if kind == models.BubblePrice && m.Has(models.BubblePrice) {
		return "", false
	}

	b := &bubble{
		id:   uuid.NewString(),
		kind: kind,
		text: text,
		size: bubbleSizes[kind],
	}
	b.frame = placeBubble(kind, b.size, anchor)
	b.surface = m.factory(kind, text, b.frame)

	m.bubbles[b.id] = b
	m.order = append(m.order, b.id)

	if ttl, ok := bubbleTTLs[kind]; ok {
		id := b.id
		b.ttl = m.sched.Schedule(ttl, false, func() {
			m.Close(id)
		})
	}

	m.log.Debug().Str("kind", kind.String()).Str("id", b.id).Msg("bubble created")
	return b.id, true
}

// Reposition recomputes every bubble's frame from the anchor and applies
// it. Bubbles whose surface has died under us are evicted, not errored.
func (m *BubbleManager) Reposition(anchor models.Frame) {
	for _, id := range append([]string(nil), m.order...) {
		b, ok := m.bubbles[id]
		if !ok {
			continue
		}
		if !b.surface.Alive() {
			m.evict(id)
			continue
		}
		b.frame = placeBubble(b.kind, b.size, anchor)
		b.surface.SetFrame(b.frame)
	}
}

// Close removes a bubble and releases its surface. Closing a chat bubble
// additionally notifies the chat-closed hook.
func (m *BubbleManager) Close(id string) {
	b, ok := m.bubbles[id]
	if !ok {
		return
	}
	m.remove(id)
	b.surface.Close()

	if b.kind == models.BubbleChat && m.onChatClosed != nil {
		m.onChatClosed()
	}
}

// evict drops a bubble whose window was destroyed externally; the surface
// is already gone, so no release and no chat-closed coupling.
func (m *BubbleManager) evict(id string) {
	m.log.Debug().Str("id", id).Msg("evicting dead bubble")
	m.remove(id)
}

func (m *BubbleManager) remove(id string) {
	b, ok := m.bubbles[id]
	if !ok {
		return
	}
	if b.ttl != nil {
		b.ttl.Cancel()
	}
	delete(m.bubbles, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *BubbleManager) Has(kind models.BubbleKind) bool {
	for _, b := range m.bubbles {
		if b.kind == kind {
			return true
		}
	}
	return false
}

func (m *BubbleManager) Count() int {
	return len(m.bubbles)
}

// Scene returns the render snapshot of all live bubbles in creation order.
func (m *BubbleManager) Scene() []models.SceneBubble {
	out := make([]models.SceneBubble, 0, len(m.order))
	for _, id := range m.order {
		b, ok := m.bubbles[id]
		if !ok {
			continue
		}
		out = append(out, models.SceneBubble{
			ID:    b.id,
			Kind:  b.kind,
			Text:  b.text,
			Frame: b.frame,
		})
	}
	return out
}

// placeBubble is the kind-specific placement rule: chat and input bubbles
// sit centered above the anchor, price bubbles to its right, vertically
// centered.
func placeBubble(kind models.BubbleKind, size models.Size, anchor models.Frame) models.Frame {
	var origin models.Point
	switch kind {
	case models.BubblePrice:
		origin = models.Point{
			X: anchor.Right() + bubbleGapX,
			Y: anchor.Origin.Y + (anchor.Size.H-size.H)/2,
		}
	default: // chat and input share the above-anchor rule
		origin = models.Point{
			X: anchor.Origin.X + (anchor.Size.W-size.W)/2,
			Y: anchor.Origin.Y - size.H - bubbleGapY,
		}
	}
	return models.Frame{Origin: origin, Size: size}
}
