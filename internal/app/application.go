package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoshinoya/dogepet/internal/ai"
	"github.com/hoshinoya/dogepet/internal/assets"
	"github.com/hoshinoya/dogepet/internal/config"
	"github.com/hoshinoya/dogepet/internal/credentials"
	"github.com/hoshinoya/dogepet/internal/dispatcher"
	"github.com/hoshinoya/dogepet/internal/eventbus"
	"github.com/hoshinoya/dogepet/internal/logging"
	"github.com/hoshinoya/dogepet/internal/market"
	"github.com/hoshinoya/dogepet/internal/models"
	"github.com/hoshinoya/dogepet/internal/pet"
	"github.com/hoshinoya/dogepet/internal/search"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	bridge     *credentials.Bridge
	runtime    *pet.Runtime
	model      *AppModel
}

// AppModel adapts the UI state to the Bubble Tea model contract.
type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	bridge     *credentials.Bridge
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.New(cfg.Log)

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(busErr eventbus.EventBusError) {
		log.Warn().Str("operation", busErr.Operation).Err(busErr.Err).Msg("event bus")
	})

	disp := dispatcher.NewEventDispatcher(eb)
	bridge := credentials.NewBridge(eb)

	client := ai.NewOpenAIClient(cfg.GetAPIKey(), cfg.BaseURL, cfg.Model)

	runtime := pet.NewRuntime(pet.Options{
		Bus:         eb,
		Assets:      assets.NewLibrary(),
		Search:      search.NewDuckDuckGoClient(log),
		Price:       market.NewCache(market.NewCoinGeckoClient(), cfg.AssetID, log),
		Completer:   client,
		Credentials: newCredentialGate(cfg, bridge, client, log),
		HistoryCap:  cfg.HistoryCap,
		Log:         log,
	})

	model := &AppModel{
		appModel:   models.AppModel{Mode: models.ModeNormal, Status: "Starting..."},
		dispatcher: disp,
		bridge:     bridge,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		bridge:     bridge,
		runtime:    runtime,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.runtime.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	// unblock any pending credential prompt before stopping the loop
	app.bridge.Close()
	app.runtime.Stop()
	app.eventBus.Close()
}
