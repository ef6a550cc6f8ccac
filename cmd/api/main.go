package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-insights/infrastructure/integrator/ollama"
	"github.com/vfg2006/channel-insights/infrastructure/integrator/ollama/ollamaclient"
	"github.com/vfg2006/channel-insights/internal/api"
	"github.com/vfg2006/channel-insights/internal/config"
	"github.com/vfg2006/channel-insights/internal/usecases/analyzing"
	"github.com/vfg2006/channel-insights/pkg/log"
)

func main() {
	log.Setup("info", os.Stdout)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, os.Stdout)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var narrator analyzing.Narrator
	if cfg.Ollama.Configured() {
		narrator = ollama.New(cfg, ollamaclient.NewClient(cfg))
		logrus.WithFields(logrus.Fields{
			"url":   cfg.Ollama.APIURL,
			"model": cfg.Ollama.Model,
		}).Info("Enriquecimento narrativo habilitado")
	} else {
		logrus.Warn("OLLAMA_API_KEY não definido, relatórios serão gerados sem narrativa")
	}

	analysisService := analyzing.NewService(narrator)

	server, err := api.New(cfg, analysisService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
