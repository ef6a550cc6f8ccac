package domain

// Insight é uma linha de texto sobre a variação de uma métrica de um canal
type Insight struct {
	Channel string
	Measure Measure
	Change  float64
	Text    string
}

// AnalysisResult é o documento de saída de uma análise.
// AIReport e Error são serializados como null quando ausentes.
type AnalysisResult struct {
	AnalyticalFacts string  `json:"analytical_facts"`
	AIReport        *string `json:"ai_report"`
	Error           *string `json:"error"`
}

func (r *AnalysisResult) SetReport(report string) {
	r.AIReport = &report
	r.Error = nil
}

func (r *AnalysisResult) SetError(message string) {
	r.Error = &message
	r.AIReport = nil
}
