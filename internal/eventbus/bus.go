package eventbus

import (
	"errors"
	"time"

	"github.com/hoshinoya/dogepet/internal/models"
)

// UIEvent represents events sent from UI to the pet runtime
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from the pet runtime to UI
type CoreEvent interface {
	CoreEvent()
}

// PointerKind is the semantic pointer gesture the frontend detected.
// The frontend owns click-count and drag discrimination; the runtime only
// sees the resolved gesture, the way a window system delivers it.
type PointerKind int

const (
	PointerClick PointerKind = iota
	PointerDoubleClick
	PointerRightClick
	PointerDrag
)

// PointerEvent - the frontend delivers a resolved pointer gesture.
// DX/DY are only meaningful for PointerDrag.
type PointerEvent struct {
	Kind   PointerKind
	Pos    models.Point
	DX, DY int
}

func (e PointerEvent) UIEvent() {}

// SubmitInputEvent - the user pressed enter in the input bubble.
type SubmitInputEvent struct {
	Text string
}

func (e SubmitInputEvent) UIEvent() {}

// CancelInputEvent - the user dismissed the input bubble without sending.
type CancelInputEvent struct{}

func (e CancelInputEvent) UIEvent() {}

// ResizeEvent - the frontend's drawable area changed.
type ResizeEvent struct {
	Size models.Size
}

func (e ResizeEvent) UIEvent() {}

// SceneUpdateEvent - runtime pushes a fresh render state to the UI.
type SceneUpdateEvent struct {
	Scene models.Scene
}

func (e SceneUpdateEvent) CoreEvent() {}

// CredentialRequestEvent - runtime asks the UI to collect the API key.
// The reply travels through the credential bridge, not back over the bus,
// because the runtime loop blocks until the prompt resolves.
type CredentialRequestEvent struct{}

func (e CredentialRequestEvent) CoreEvent() {}

// ShutdownEvent - runtime tells the UI to terminate.
type ShutdownEvent struct{}

func (e ShutdownEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

// EventBus handles communication between UI and the pet runtime.
// Sends never block: a full channel is reported as an error and the event
// is dropped. Scene updates are refreshed on the next heartbeat anyway.
type EventBus struct {
	uiToCore      chan UIEvent
	coreToUI      chan CoreEvent
	errorCallback func(EventBusError)
}

func NewEventBus() *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, 100),
		coreToUI: make(chan CoreEvent, 100),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	if eb.errorCallback != nil {
		eb.errorCallback(EventBusError{
			Operation: operation,
			Err:       err,
			Timestamp: time.Now(),
		})
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	select {
	case eb.uiToCore <- event:
		return nil
	default:
		err := errors.New("UI to core channel is full")
		eb.reportError("SendToCore", err)
		return err
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	select {
	case eb.coreToUI <- event:
		return nil
	default:
		err := errors.New("core to UI channel is full")
		eb.reportError("SendToUI", err)
		return err
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) Close() {
	close(eb.uiToCore)
	close(eb.coreToUI)
}
