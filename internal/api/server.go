package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-insights/internal/api/handler"
	"github.com/vfg2006/channel-insights/internal/api/handler/router"
	"github.com/vfg2006/channel-insights/internal/config"
	"github.com/vfg2006/channel-insights/internal/usecases/analyzing"
	"github.com/vfg2006/channel-insights/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o roteador com a cadeia de middlewares
func NewHandler(config *config.Config, analyzer analyzing.Analyzer) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Insights(analyzer)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, analyzer analyzing.Analyzer) (*Server, error) {
	// Cada análise pode fazer até quatro chamadas ao modelo
	writeTimeout := 4*config.Ollama.Timeout + 10*time.Second

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, analyzer),
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      writeTimeout,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
