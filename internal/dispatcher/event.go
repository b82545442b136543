package dispatcher

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoshinoya/dogepet/internal/eventbus"
	"github.com/hoshinoya/dogepet/internal/update"
)

// EventDispatcher bridges runtime events into the Bubble Tea message loop.
type EventDispatcher struct {
	eventBus *eventbus.EventBus
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	return &EventDispatcher{eventBus: eventBus}
}

// ListenForCoreEvents returns a command that delivers the next runtime
// event as a tea message. The model re-issues it after every delivery.
func (ed *EventDispatcher) ListenForCoreEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ed.eventBus.CoreToUI()
		if !ok {
			return update.CoreClosedMsg{}
		}
		return update.CoreEventMsg{Event: event}
	}
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}
