// Package pet is the companion's in-process runtime: the animation state
// machine, the popup registry, the single-flight conversation pipeline and
// the orchestrating event loop. Exactly one goroutine (the runtime loop)
// owns all of this state; network workers hand results back by posting
// closures onto the loop.
package pet

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hoshinoya/dogepet/internal/ai"
	"github.com/hoshinoya/dogepet/internal/eventbus"
	"github.com/hoshinoya/dogepet/internal/models"
	"github.com/hoshinoya/dogepet/internal/search"
)

const (
	// heartbeatInterval drives frame advance and doubles as the layout
	// refresh clock: the anchor can move at any time via drag and there is
	// no separate move hook guaranteed to fire often enough.
	heartbeatInterval = 60 * time.Millisecond

	firstPriceDelay = 2 * time.Second
	priceCadence    = 10 * time.Minute

	anchorWidth  = 10
	anchorHeight = 5
)

const statusHint = "drag: move | click/p: price | double-click/c: chat | right-click/q: quit"

// Options wires a Runtime's collaborators together.
type Options struct {
	Bus         *eventbus.EventBus
	Assets      AssetSource
	Search      search.Provider
	Price       PriceSource
	Completer   ai.Completer
	Credentials CredentialGate
	Surfaces    SurfaceFactory // nil means scene-drawn surfaces
	HistoryCap  int
	Log         *zerolog.Logger
}

// Runtime composes the pet's components, owns the anchor frame, and routes
// UI events into the right component call.
type Runtime struct {
	log *zerolog.Logger
	bus *eventbus.EventBus

	ctx    context.Context
	cancel context.CancelFunc
	posted chan func()
	done   chan struct{}

	sched    *loopScheduler
	anim     *Animator
	bubbles  *BubbleManager
	input    *InputSession
	pipeline *Pipeline
	price    PriceSource

	anchor models.Frame
	screen models.Size
	placed bool

	pricePending bool
	handles      []Handle
}

func NewRuntime(opts Options) *Runtime {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runtime{
		log:    opts.Log,
		bus:    opts.Bus,
		ctx:    ctx,
		cancel: cancel,
		posted: make(chan func(), 128),
		done:   make(chan struct{}),
		price:  opts.Price,
		anchor: models.Frame{
			Origin: models.Point{X: 20, Y: 8},
			Size:   models.Size{W: anchorWidth, H: anchorHeight},
		},
	}

	r.sched = newLoopScheduler(r.post)
	r.anim = NewAnimator(opts.Assets, r.sched, opts.Log)
	r.bubbles = NewBubbleManager(r.sched, opts.Surfaces, opts.Log)
	r.input = NewInputSession(r.bubbles)
	r.pipeline = NewPipeline(PipelineDeps{
		Session:     NewSession(opts.HistoryCap),
		Animator:    r.anim,
		Bubbles:     r.bubbles,
		Input:       r.input,
		Credentials: opts.Credentials,
		Search:      opts.Search,
		Price:       opts.Price,
		Completer:   opts.Completer,
		Post:        r.post,
		Anchor:      func() models.Frame { return r.anchor },
		Log:         opts.Log,
	})

	// chat conclusion resumes the idle/price cadence
	r.bubbles.OnChatClosed(func() {
		r.anim.SetState(StateIdle)
		r.showPrice()
	})

	return r
}

// Start launches the runtime loop and arms the standing timers.
func (r *Runtime) Start() {
	go r.loop()
	r.post(r.bootstrap)
}

// Stop shuts the loop down and waits for it to drain.
func (r *Runtime) Stop() {
	r.cancel()
	<-r.done
}

// post hands a closure to the runtime goroutine. It is safe from any
// goroutine and gives up once the runtime is shutting down.
func (r *Runtime) post(fn func()) {
	select {
	case r.posted <- fn:
	case <-r.ctx.Done():
	}
}

func (r *Runtime) loop() {
	defer close(r.done)
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return
		case event, ok := <-r.bus.UIToCore():
			if !ok {
				r.shutdown()
				return
			}
			r.handleUIEvent(event)
		case fn := <-r.posted:
			fn()
		}
	}
}

func (r *Runtime) bootstrap() {
	r.handles = append(r.handles,
		r.sched.Schedule(heartbeatInterval, true, r.tick),
		r.sched.Schedule(firstPriceDelay, false, r.showPrice),
		r.sched.Schedule(priceCadence, true, r.showPrice),
	)
	r.log.Info().Msg("pet started: drag = left-click, chat = double-click, menu = right-click")
	r.pushScene()
}

func (r *Runtime) shutdown() {
	for _, h := range r.handles {
		h.Cancel()
	}
}

func (r *Runtime) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.PointerEvent:
		r.handlePointer(e)
	case eventbus.SubmitInputEvent:
		r.input.Submit(e.Text)
		r.pushScene()
	case eventbus.CancelInputEvent:
		r.input.Close()
		r.pushScene()
	case eventbus.ResizeEvent:
		r.handleResize(e.Size)
	}
}

func (r *Runtime) handlePointer(e eventbus.PointerEvent) {
	switch e.Kind {
	case eventbus.PointerClick:
		r.showPrice()
	case eventbus.PointerDoubleClick:
		r.pipeline.Initiate()
		r.pushScene()
	case eventbus.PointerRightClick:
		// the context menu's only entry is exit
		_ = r.bus.SendToUI(eventbus.ShutdownEvent{})
	case eventbus.PointerDrag:
		r.moveAnchor(e.DX, e.DY)
	}
}

func (r *Runtime) moveAnchor(dx, dy int) {
	r.anchor = r.anchor.Offset(dx, dy)
	r.clampAnchor()
	r.bubbles.Reposition(r.anchor)
	r.pushScene()
}

func (r *Runtime) handleResize(size models.Size) {
	r.screen = size
	if !r.placed {
		r.anchor.Origin = models.Point{
			X: (size.W - r.anchor.Size.W) / 2,
			Y: (size.H - r.anchor.Size.H) / 2,
		}
		r.placed = true
	}
	r.clampAnchor()
	r.bubbles.Reposition(r.anchor)
	r.pushScene()
}

func (r *Runtime) clampAnchor() {
	if r.screen.W == 0 || r.screen.H == 0 {
		return
	}
	if r.anchor.Origin.X > r.screen.W-r.anchor.Size.W {
		r.anchor.Origin.X = r.screen.W - r.anchor.Size.W
	}
	if r.anchor.Origin.X < 0 {
		r.anchor.Origin.X = 0
	}
	if r.anchor.Origin.Y > r.screen.H-r.anchor.Size.H {
		r.anchor.Origin.Y = r.screen.H - r.anchor.Size.H
	}
	if r.anchor.Origin.Y < 0 {
		r.anchor.Origin.Y = 0
	}
}

// tick is the heartbeat: advance the animation and resync bubble layout.
func (r *Runtime) tick() {
	r.anim.Advance()
	r.bubbles.Reposition(r.anchor)
	r.pushScene()
}

// showPrice pops the price bubble. The fetch runs on a worker; the bubble
// is created on the loop once the snippet is back. pricePending keeps a
// click burst from spawning a fetch per click.
func (r *Runtime) showPrice() {
	if r.bubbles.Has(models.BubblePrice) || r.pricePending {
		return
	}
	r.pricePending = true
	go func() {
		snippet := r.price.Snippet(context.Background(), false)
		if snippet == "" {
			snippet = "Price unavailable."
		}
		r.post(func() {
			r.pricePending = false
			r.bubbles.Create(models.BubblePrice, snippet, r.anchor)
			r.pushScene()
		})
	}()
}

func (r *Runtime) pushScene() {
	scene := models.Scene{
		Anchor:    r.anchor,
		Sprite:    r.anim.Frame(),
		Bubbles:   r.bubbles.Scene(),
		InputOpen: r.input.IsOpen(),
		Thinking:  r.anim.State() == StateThinking,
		Status:    statusHint,
	}
	_ = r.bus.SendToUI(eventbus.SceneUpdateEvent{Scene: scene})
}
