package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoshinoya/dogepet/internal/update"
	"github.com/hoshinoya/dogepet/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForCoreEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle runtime events and keep listening for the next one
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent, m.bridge)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	cmd := update.HandleUpdate(&m.appModel, msg, m.dispatcher.GetEventBus(), m.bridge)
	return m, cmd
}

func (m *AppModel) View() string {
	return components.RenderScene(&m.appModel)
}
