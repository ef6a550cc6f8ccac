package analyzing

import (
	"context"

	"github.com/vfg2006/channel-insights/internal/domain"
	"github.com/vfg2006/channel-insights/pkg/log"
	"github.com/vfg2006/channel-insights/pkg/utils"
)

type Service struct {
	narrator Narrator
}

// NewService cria o serviço de análise. narrator nil significa que o
// enriquecimento não está configurado.
func NewService(narrator Narrator) *Service {
	return &Service{narrator: narrator}
}

// Analyze calcula os fatos do snapshot e, quando possível, pede a narrativa.
// Falhas do enriquecimento são devolvidas no campo Error e nunca interrompem a análise.
func (s *Service) Analyze(ctx context.Context, snapshot *domain.MetricsSnapshot) *domain.AnalysisResult {
	runID, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Debug("analysis: could not generate run id")
	}
	logger := log.ForContext(ctx).WithField("analysis_id", runID)

	insights := Evaluate(snapshot)
	result := &domain.AnalysisResult{
		AnalyticalFacts: Facts(insights),
	}

	logger.WithFields(log.Fields{
		"channels": snapshot.Len(),
		"insights": len(insights),
	}).Info("analysis: facts computed")

	if s.narrator == nil {
		logger.Info("analysis: narrative enrichment not configured")
		result.SetError(ErrNotConfigured.Error())
		analysesTotal.WithLabelValues("not_configured").Inc()
		return result
	}

	report, err := s.narrator.Narrate(ctx, result.AnalyticalFacts)
	if err != nil {
		logger.WithError(err).Warn("analysis: narrative enrichment failed")
		result.SetError(err.Error())
		analysesTotal.WithLabelValues("failed").Inc()
		return result
	}

	logger.WithField("report_length", len(report)).Info("analysis: narrative report received")
	result.SetReport(report)
	analysesTotal.WithLabelValues("report").Inc()

	return result
}
