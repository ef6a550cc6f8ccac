package analyzing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/channel-insights/internal/domain"
)

const (
	// SignificanceThreshold é a variação percentual (exclusiva) a partir da qual um insight é gerado
	SignificanceThreshold = 5.0

	// NoSignificantChanges é o texto usado quando nenhum canal gerou insight
	NoSignificantChanges = "Metric changes are insignificant."
)

type measureRule struct {
	measure domain.Measure
	rose    string
	fell    string
}

// CPC não entra nas regras: a variação é calculada mas nunca comparada.
var measureRules = []measureRule{
	{
		measure: domain.MeasureCTR,
		rose:    "CTR %s rose by %s%%: ads became more attractive.",
		fell:    "CTR %s fell by %s%%: creatives should be refreshed.",
	},
	{
		measure: domain.MeasureCPA,
		rose:    "CPA %s rose by %s%%: advertising is getting more expensive.",
		fell:    "CPA %s fell by %s%%: efficiency has improved.",
	},
	{
		measure: domain.MeasureConversions,
		rose:    "Conversions %s rose by %s%%.",
		fell:    "Conversions %s fell by %s%%: optimization is required.",
	},
}

// PercentChange retorna a variação de previous para current em pontos percentuais.
// previous igual a zero retorna 0, o que não significa ausência de variação.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Changes calcula a variação entre o período atual (índice 0) e o anterior (índice 1)
// para todas as métricas do canal, inclusive CPC.
func Changes(series domain.ChannelSeries) map[domain.Measure]float64 {
	changes := make(map[domain.Measure]float64, len(domain.Measures))
	for _, m := range domain.Measures {
		values := series.Values(m)
		changes[m] = PercentChange(values[0], values[1])
	}
	return changes
}

// EvaluateChannel gera os insights de um canal. Canais sem dois períodos em
// todas as séries não geram nada.
func EvaluateChannel(name string, series domain.ChannelSeries) []domain.Insight {
	if !series.Comparable() {
		return nil
	}

	changes := Changes(series)

	var insights []domain.Insight
	for _, rule := range measureRules {
		change := changes[rule.measure]

		var template string
		switch {
		case change > SignificanceThreshold:
			template = rule.rose
		case change < -SignificanceThreshold:
			template = rule.fell
		default:
			continue
		}

		insights = append(insights, domain.Insight{
			Channel: name,
			Measure: rule.measure,
			Change:  change,
			Text:    fmt.Sprintf(template, name, formatPercent(math.Abs(change))),
		})
	}

	return insights
}

// formatPercent usa uma casa decimal; variações infinitas saem como "inf"
func formatPercent(v float64) string {
	if math.IsInf(v, 0) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Evaluate percorre os canais na ordem do snapshot
func Evaluate(snapshot *domain.MetricsSnapshot) []domain.Insight {
	var insights []domain.Insight
	if snapshot == nil {
		return insights
	}

	for _, channel := range snapshot.Channels {
		insights = append(insights, EvaluateChannel(channel.Name, channel.Series)...)
	}

	return insights
}

// Facts junta os insights em linhas, ou devolve NoSignificantChanges
func Facts(insights []domain.Insight) string {
	if len(insights) == 0 {
		return NoSignificantChanges
	}

	lines := make([]string, 0, len(insights))
	for _, insight := range insights {
		lines = append(lines, insight.Text)
	}

	return strings.Join(lines, "\n")
}
