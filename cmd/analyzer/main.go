// Command analyzer lê um snapshot de métricas em JSON pela entrada padrão e
// escreve o resultado da análise na saída padrão.
package main

import (
	"context"
	"io"
	"os"

	"github.com/vfg2006/channel-insights/infrastructure/integrator/ollama"
	"github.com/vfg2006/channel-insights/infrastructure/integrator/ollama/ollamaclient"
	"github.com/vfg2006/channel-insights/internal/config"
	"github.com/vfg2006/channel-insights/internal/usecases/analyzing"
	"github.com/vfg2006/channel-insights/pkg/log"
	"github.com/vfg2006/channel-insights/pkg/utils"
)

type errorOutput struct {
	Error string `json:"error"`
}

func main() {
	// Logs vão para stderr; stdout recebe apenas o documento de resultado
	log.Setup("info", os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		writeError(os.Stderr, err)
		os.Exit(1)
	}
	log.Setup(cfg.App.LogLevel, os.Stderr)

	os.Exit(run(context.Background(), newAnalyzer(cfg), os.Stdin, os.Stdout, os.Stderr))
}

// newAnalyzer só conecta o cliente do Ollama quando existe uma credencial
func newAnalyzer(cfg *config.Config) analyzing.Analyzer {
	if !cfg.Ollama.Configured() {
		return analyzing.NewService(nil)
	}

	client := ollamaclient.NewClient(cfg)
	return analyzing.NewService(ollama.New(cfg, client))
}

// run devolve o código de saída do processo
func run(ctx context.Context, analyzer analyzing.Analyzer, stdin io.Reader, stdout, stderr io.Writer) int {
	snapshot, err := analyzing.ReadSnapshot(stdin)
	if err != nil {
		log.L.WithError(err).Debug("analyzer: invalid input")
		writeError(stderr, err)
		return 1
	}

	result := analyzer.Analyze(ctx, snapshot)

	if err := utils.WriteIndentedJSON(stdout, result); err != nil {
		writeError(stderr, err)
		return 1
	}

	return 0
}

func writeError(w io.Writer, err error) {
	_ = utils.WriteJSON(w, errorOutput{Error: err.Error()})
}
