package ollamaclient

import "github.com/prometheus/client_golang/prometheus"

var variantAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "channel_insights",
		Subsystem: "ollama",
		Name:      "variant_attempts_total",
		Help:      "Total enrichment requests by endpoint variant and outcome.",
	},
	[]string{"variant", "outcome"},
)

func init() {
	prometheus.MustRegister(variantAttempts)
}
