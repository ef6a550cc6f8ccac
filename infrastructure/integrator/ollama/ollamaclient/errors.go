package ollamaclient

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey     = errors.New("ollama: api key is empty")
	ErrAllVariantsFailed = errors.New("Ollama API error: Tried multiple endpoints")
	ErrMissingText       = errors.New("response has no text field")
)

// RemoteError carrega a mensagem de erro enviada pelo servidor numa resposta 2xx
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// maxErrorBody limita o trecho do corpo incluído na mensagem de erro
const maxErrorBody = 200

// StatusError representa uma resposta fora da faixa 2xx
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("HTTP %s for url: %s", e.Status, e.URL)
	if e.Body == "" {
		return msg
	}

	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return msg + ": " + body
}
