package analyzing

import (
	"context"

	"github.com/vfg2006/channel-insights/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Narrator define a interface para obter um texto narrativo a partir dos fatos calculados
type Narrator interface {
	// Narrate devolve o relatório gerado pelo modelo remoto
	Narrate(ctx context.Context, facts string) (string, error)
}

// Analyzer é a interface do caso de uso completo usada pelos pontos de entrada
type Analyzer interface {
	Analyze(ctx context.Context, snapshot *domain.MetricsSnapshot) *domain.AnalysisResult
}
