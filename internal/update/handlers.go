package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoshinoya/dogepet/internal/credentials"
	"github.com/hoshinoya/dogepet/internal/eventbus"
	"github.com/hoshinoya/dogepet/internal/models"
)

// doubleClickWindow is how long a click waits to see whether it becomes a
// double click before being dispatched as a single one.
const doubleClickWindow = 350 * time.Millisecond

// CoreEventMsg wraps runtime events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// CoreClosedMsg signals the runtime side of the bus has gone away
type CoreClosedMsg struct{}

// ClickTimeoutMsg fires when a pending single click did not turn into a
// double click
type ClickTimeoutMsg struct{}

// HandleKeyMsg handles keyboard input per mode. Normal mode carries the
// pointer fallbacks (p/c/q) for terminals without mouse reporting.
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus, bridge *credentials.Bridge) tea.Cmd {
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	switch appModel.Mode {
	case models.ModeInput:
		return handleInputKey(appModel, keyMsg, eb)
	case models.ModeCredential:
		return handleCredentialKey(appModel, keyMsg, bridge)
	}

	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case "p":
		sendPointer(eb, eventbus.PointerEvent{Kind: eventbus.PointerClick})
	case "c":
		sendPointer(eb, eventbus.PointerEvent{Kind: eventbus.PointerDoubleClick})
	}
	return nil
}

func handleInputKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyEnter:
		text := appModel.Buffer
		appModel.Buffer = ""
		appModel.Mode = models.ModeNormal
		if err := eb.SendToCore(eventbus.SubmitInputEvent{Text: text}); err != nil {
			appModel.Status = "Error sending message: " + err.Error()
		}
	case tea.KeyEsc:
		appModel.Buffer = ""
		appModel.Mode = models.ModeNormal
		_ = eb.SendToCore(eventbus.CancelInputEvent{})
	case tea.KeyBackspace:
		if len(appModel.Buffer) > 0 {
			appModel.Buffer = appModel.Buffer[:len(appModel.Buffer)-1]
		}
	case tea.KeySpace:
		appModel.Buffer += " "
	case tea.KeyRunes:
		appModel.Buffer += string(keyMsg.Runes)
	}
	return nil
}

func handleCredentialKey(appModel *models.AppModel, keyMsg tea.KeyMsg, bridge *credentials.Bridge) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyEnter:
		key := appModel.Buffer
		appModel.Buffer = ""
		appModel.Mode = models.ModeNormal
		bridge.Reply(key, true)
	case tea.KeyEsc:
		appModel.Buffer = ""
		appModel.Mode = models.ModeNormal
		bridge.Reply("", false)
	case tea.KeyBackspace:
		if len(appModel.Buffer) > 0 {
			appModel.Buffer = appModel.Buffer[:len(appModel.Buffer)-1]
		}
	case tea.KeySpace:
		appModel.Buffer += " "
	case tea.KeyRunes:
		appModel.Buffer += string(keyMsg.Runes)
	}
	return nil
}

// HandleMouseMsg turns raw mouse traffic into semantic pointer gestures:
// press-move is a drag, press-release a click, two quick clicks a double.
func HandleMouseMsg(appModel *models.AppModel, msg tea.MouseMsg, eb *eventbus.EventBus) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			appModel.Dragging = true
			appModel.DragMoved = false
			appModel.LastX, appModel.LastY = msg.X, msg.Y
		case tea.MouseButtonRight:
			sendPointer(eb, eventbus.PointerEvent{
				Kind: eventbus.PointerRightClick,
				Pos:  models.Point{X: msg.X, Y: msg.Y},
			})
		}

	case tea.MouseActionMotion:
		if !appModel.Dragging {
			return nil
		}
		dx, dy := msg.X-appModel.LastX, msg.Y-appModel.LastY
		appModel.LastX, appModel.LastY = msg.X, msg.Y
		if dx == 0 && dy == 0 {
			return nil
		}
		appModel.DragMoved = true
		sendPointer(eb, eventbus.PointerEvent{
			Kind: eventbus.PointerDrag,
			Pos:  models.Point{X: msg.X, Y: msg.Y},
			DX:   dx,
			DY:   dy,
		})

	case tea.MouseActionRelease:
		if !appModel.Dragging {
			return nil
		}
		appModel.Dragging = false
		if appModel.DragMoved {
			return nil
		}
		if appModel.PendingClick {
			appModel.PendingClick = false
			sendPointer(eb, eventbus.PointerEvent{
				Kind: eventbus.PointerDoubleClick,
				Pos:  models.Point{X: msg.X, Y: msg.Y},
			})
			return nil
		}
		appModel.PendingClick = true
		return tea.Tick(doubleClickWindow, func(time.Time) tea.Msg {
			return ClickTimeoutMsg{}
		})
	}
	return nil
}

// HandleClickTimeout dispatches a click that never became a double.
func HandleClickTimeout(appModel *models.AppModel, eb *eventbus.EventBus) tea.Cmd {
	if appModel.PendingClick {
		appModel.PendingClick = false
		sendPointer(eb, eventbus.PointerEvent{Kind: eventbus.PointerClick})
	}
	return nil
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg, eb *eventbus.EventBus) tea.Cmd {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	_ = eb.SendToCore(eventbus.ResizeEvent{
		Size: models.Size{W: sizeMsg.Width, H: sizeMsg.Height},
	})
	return nil
}

// HandleCoreEvent processes events from the runtime
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg, bridge *credentials.Bridge) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.SceneUpdateEvent:
		appModel.Scene = event.Scene
		appModel.Status = event.Scene.Status
		// the scene decides whether typing goes to the input bubble
		if event.Scene.InputOpen && appModel.Mode == models.ModeNormal {
			appModel.Mode = models.ModeInput
		}
		if !event.Scene.InputOpen && appModel.Mode == models.ModeInput {
			appModel.Mode = models.ModeNormal
			appModel.Buffer = ""
		}
	case eventbus.CredentialRequestEvent:
		appModel.Mode = models.ModeCredential
		appModel.Buffer = ""
		appModel.Status = "Enter your OpenAI API key (esc to cancel)"
	case eventbus.ShutdownEvent:
		return tea.Quit
	}
	return nil
}

func sendPointer(eb *eventbus.EventBus, event eventbus.PointerEvent) {
	_ = eb.SendToCore(event)
}
