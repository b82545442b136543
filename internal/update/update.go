package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoshinoya/dogepet/internal/credentials"
	"github.com/hoshinoya/dogepet/internal/eventbus"
	"github.com/hoshinoya/dogepet/internal/models"
)

// HandleUpdate routes a tea message to the right handler. The UI owns
// only presentation state; everything the pet knows arrives as a Scene.
func HandleUpdate(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus, bridge *credentials.Bridge) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, msg, eb, bridge)
	case tea.MouseMsg:
		return HandleMouseMsg(appModel, msg, eb)
	case tea.WindowSizeMsg:
		return HandleWindowSizeMsg(appModel, msg, eb)
	case ClickTimeoutMsg:
		return HandleClickTimeout(appModel, eb)
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg, bridge)
	case CoreClosedMsg:
		return tea.Quit
	}
	return nil
}
