package ollamaclient

import (
	"fmt"

	ollamadomain "github.com/vfg2006/channel-insights/infrastructure/integrator/ollama/domain"
)

func chatMessages(prompt string) []ollamadomain.ChatMessage {
	return []ollamadomain.ChatMessage{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: prompt},
	}
}

func chatPayload(model string, temperature float64) func(string) any {
	return func(prompt string) any {
		return ollamadomain.ChatRequest{
			Model:    model,
			Messages: chatMessages(prompt),
			Stream:   false,
			Options:  ollamadomain.Options{Temperature: temperature},
		}
	}
}

func extractChat(body []byte) (string, error) {
	var response ollamadomain.ChatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}

	if response.Error.Reported() {
		return "", &RemoteError{Message: response.Error.Message}
	}

	if response.Message == nil || response.Message.Content == nil {
		return "", fmt.Errorf("%w: message.content", ErrMissingText)
	}

	return *response.Message.Content, nil
}
