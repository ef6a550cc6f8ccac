package domain

// Measure identifica uma das séries de um canal
type Measure string

const (
	MeasureCPC         Measure = "cpc"
	MeasureCTR         Measure = "ctr"
	MeasureCPA         Measure = "cpa"
	MeasureConversions Measure = "conversions"
)

// Measures lista as séries na ordem em que são lidas da entrada
var Measures = []Measure{MeasureCPC, MeasureCTR, MeasureCPA, MeasureConversions}

// ChannelSeries guarda as séries de um canal, do período mais novo para o mais antigo
type ChannelSeries struct {
	CPC         []float64 `json:"cpc"`
	CTR         []float64 `json:"ctr"`
	CPA         []float64 `json:"cpa"`
	Conversions []float64 `json:"conversions"`
}

func (s ChannelSeries) Values(m Measure) []float64 {
	switch m {
	case MeasureCPC:
		return s.CPC
	case MeasureCTR:
		return s.CTR
	case MeasureCPA:
		return s.CPA
	case MeasureConversions:
		return s.Conversions
	}
	return nil
}

// Comparable indica se todas as séries têm ao menos o período atual e o anterior
func (s ChannelSeries) Comparable() bool {
	return len(s.CPC) >= 2 && len(s.CTR) >= 2 && len(s.CPA) >= 2 && len(s.Conversions) >= 2
}

type Channel struct {
	Name   string
	Series ChannelSeries
}

// MetricsSnapshot mantém os canais na ordem em que aparecem no documento de entrada
type MetricsSnapshot struct {
	Channels []Channel
}

// Set insere ou substitui um canal. Um nome repetido mantém a posição original.
func (m *MetricsSnapshot) Set(name string, series ChannelSeries) {
	for i := range m.Channels {
		if m.Channels[i].Name == name {
			m.Channels[i].Series = series
			return
		}
	}
	m.Channels = append(m.Channels, Channel{Name: name, Series: series})
}

func (m *MetricsSnapshot) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Channels)
}
