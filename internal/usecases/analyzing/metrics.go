package analyzing

import "github.com/prometheus/client_golang/prometheus"

var analysesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "channel_insights",
		Name:      "analyses_total",
		Help:      "Total analyses by enrichment outcome (report, failed, not_configured).",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(analysesTotal)
}
