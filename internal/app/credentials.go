package app

import (
	"github.com/rs/zerolog"

	"github.com/hoshinoya/dogepet/internal/ai"
	"github.com/hoshinoya/dogepet/internal/config"
	"github.com/hoshinoya/dogepet/internal/credentials"
	"github.com/hoshinoya/dogepet/internal/pet"
)

var _ pet.CredentialGate = (*credentialGate)(nil)

// credentialGate makes sure the completion client has an API key before a
// conversation starts, prompting through the frontend when none is stored.
type credentialGate struct {
	cfg    *config.Config
	bridge *credentials.Bridge
	client *ai.OpenAIClient
	log    *zerolog.Logger
	ready  bool
}

func newCredentialGate(cfg *config.Config, bridge *credentials.Bridge, client *ai.OpenAIClient, log *zerolog.Logger) *credentialGate {
	return &credentialGate{
		cfg:    cfg,
		bridge: bridge,
		client: client,
		log:    log,
		ready:  cfg.HasAPIKey(),
	}
}

// Ensure reports whether a key is available, prompting the user once per
// process if one was not already stored.
func (g *credentialGate) Ensure() bool {
	if g.ready {
		return true
	}

	key, ok := g.bridge.Prompt()
	if !ok || key == "" {
		return false
	}

	if err := g.cfg.SetAPIKey(key); err != nil {
		// keep going with the in-memory key; persistence can fail on a
		// read-only home without making the session unusable
		g.log.Warn().Err(err).Msg("could not persist API key")
	}
	g.client.Configure(key)
	g.ready = true
	return true
}
