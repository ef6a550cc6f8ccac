package ollama

import (
	"context"

	"github.com/vfg2006/channel-insights/infrastructure/integrator/ollama/ollamaclient"
	"github.com/vfg2006/channel-insights/internal/config"
	"github.com/vfg2006/channel-insights/pkg/log"
)

// OllamaIntegrator implementa analyzing.Narrator sobre o cliente HTTP
type OllamaIntegrator struct {
	cfg    *config.Config
	Client ollamaclient.Client
}

func New(cfg *config.Config, client ollamaclient.Client) *OllamaIntegrator {
	return &OllamaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *OllamaIntegrator) Narrate(ctx context.Context, facts string) (string, error) {
	log.ForContext(ctx).WithFields(log.Fields{
		"model": s.cfg.Ollama.Model,
		"url":   s.cfg.Ollama.APIURL,
	}).Debug("ollama: requesting narrative report")

	return s.Client.Generate(ctx, BuildPrompt(facts))
}
