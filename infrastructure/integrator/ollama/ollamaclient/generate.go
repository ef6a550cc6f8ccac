package ollamaclient

import (
	"fmt"

	ollamadomain "github.com/vfg2006/channel-insights/infrastructure/integrator/ollama/domain"
)

func generatePayload(model string, temperature float64) func(string) any {
	return func(prompt string) any {
		return ollamadomain.GenerateRequest{
			Model:   model,
			Prompt:  prompt,
			Stream:  false,
			Options: ollamadomain.Options{Temperature: temperature},
		}
	}
}

func extractGenerate(body []byte) (string, error) {
	var response ollamadomain.GenerateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}

	if response.Error.Reported() {
		return "", &RemoteError{Message: response.Error.Message}
	}

	if response.Response == nil {
		return "", fmt.Errorf("%w: response", ErrMissingText)
	}

	return *response.Response, nil
}
