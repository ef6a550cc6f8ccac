package ollamaclient

import (
	"fmt"

	ollamadomain "github.com/vfg2006/channel-insights/infrastructure/integrator/ollama/domain"
)

func openAIPayload(model string, temperature float64) func(string) any {
	return func(prompt string) any {
		return ollamadomain.OpenAIChatRequest{
			Model:       model,
			Messages:    chatMessages(prompt),
			Temperature: temperature,
		}
	}
}

func extractOpenAI(body []byte) (string, error) {
	var response ollamadomain.OpenAIChatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode chat completions response: %w", err)
	}

	if response.Error.Reported() {
		return "", &RemoteError{Message: response.Error.Message}
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: choices is empty", ErrMissingText)
	}

	message := response.Choices[0].Message
	if message == nil || message.Content == nil {
		return "", fmt.Errorf("%w: choices[0].message.content", ErrMissingText)
	}

	return *message.Content, nil
}
