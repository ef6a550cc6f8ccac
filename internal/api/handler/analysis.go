package handler

import (
	"net/http"

	"github.com/vfg2006/channel-insights/internal/usecases/analyzing"
	"github.com/vfg2006/channel-insights/pkg/apiErrors"
	"github.com/vfg2006/channel-insights/pkg/log"
	"github.com/vfg2006/channel-insights/pkg/utils"
)

// maxSnapshotBytes limita o tamanho do corpo aceito em /v1/insights/analyze
const maxSnapshotBytes = 1 << 20

func AnalyzeMetrics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body := http.MaxBytesReader(w, r.Body, maxSnapshotBytes)
		snapshot, err := analyzing.ReadSnapshot(body)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("insights: invalid metrics payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithField("channels", snapshot.Len()).Info("insights: analyzing metrics snapshot")

		result := service.Analyze(r.Context(), snapshot)

		w.Header().Set("Content-Type", "application/json")
		if err := utils.WriteIndentedJSON(w, result); err != nil {
			logger.WithField("error", err.Error()).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to encode analysis result", nil)
		}
	})
}
