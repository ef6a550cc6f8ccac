package ollamaclient

import "strings"

const (
	VariantGenerate   = "generate"
	VariantChat       = "chat"
	VariantOpenAI     = "openai"
	VariantOpenAIRoot = "openai-root"
)

// Variant descreve um formato de endpoint: URL, corpo da requisição e como extrair o texto
type Variant struct {
	Name    string
	URL     string
	Payload func(prompt string) any
	Extract func(body []byte) (string, error)
}

// Variants devolve as variantes na ordem em que são tentadas
func (c *OllamaClient) Variants() []Variant {
	base := strings.TrimRight(c.config.Ollama.APIURL, "/")
	model := c.config.Ollama.Model
	temperature := c.config.Ollama.Temperature

	return []Variant{
		{
			Name:    VariantGenerate,
			URL:     base + "/generate",
			Payload: generatePayload(model, temperature),
			Extract: extractGenerate,
		},
		{
			Name:    VariantChat,
			URL:     base + "/chat",
			Payload: chatPayload(model, temperature),
			Extract: extractChat,
		},
		{
			Name:    VariantOpenAI,
			URL:     base + "/v1/chat/completions",
			Payload: openAIPayload(model, temperature),
			Extract: extractOpenAI,
		},
		{
			Name:    VariantOpenAIRoot,
			URL:     StripAPISegment(base) + "/v1/chat/completions",
			Payload: openAIPayload(model, temperature),
			Extract: extractOpenAI,
		},
	}
}

// StripAPISegment remove um segmento final "/api" da URL base, se existir
func StripAPISegment(base string) string {
	base = strings.TrimRight(base, "/")
	return strings.TrimSuffix(base, "/api")
}
