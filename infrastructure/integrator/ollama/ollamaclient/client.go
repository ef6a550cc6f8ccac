package ollamaclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/channel-insights/internal/config"
	"github.com/vfg2006/channel-insights/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SystemPrompt é a mensagem de sistema enviada nos formatos de chat
const SystemPrompt = "You analyze advertising metrics and write brief conclusions for the client."

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	// Generate tenta as variantes em ordem e devolve o texto da primeira que responder
	Generate(ctx context.Context, prompt string) (string, error)
	Variants() []Variant
}

type OllamaClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OllamaClient{
		httpClient: &http.Client{
			Timeout: cfg.Ollama.Timeout,
		},
		config: cfg,
	}
}

// NewClientWithHTTP permite injetar um http.Client, usado nos testes
func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) Client {
	return &OllamaClient{
		httpClient: httpClient,
		config:     cfg,
	}
}

func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.config.Ollama.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	logger := log.ForContext(ctx)

	var lastErr error
	for _, variant := range c.Variants() {
		text, err := c.try(ctx, variant, prompt)
		if err != nil {
			lastErr = err
			variantAttempts.WithLabelValues(variant.Name, "failure").Inc()
			logger.WithFields(log.Fields{
				"variant": variant.Name,
				"url":     variant.URL,
				"error":   err.Error(),
			}).Warn("ollama: variant failed, trying next")
			continue
		}

		variantAttempts.WithLabelValues(variant.Name, "success").Inc()
		logger.WithFields(log.Fields{
			"variant": variant.Name,
			"url":     variant.URL,
		}).Debug("ollama: variant succeeded")

		return text, nil
	}

	return "", fmt.Errorf("%w. Last error: %w", ErrAllVariantsFailed, lastErr)
}

// try executa uma única requisição, limitada pelo timeout configurado
func (c *OllamaClient) try(ctx context.Context, variant Variant, prompt string) (string, error) {
	payload, err := json.Marshal(variant.Payload(prompt))
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", variant.Name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Ollama.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, variant.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Ollama.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        variant.URL,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return variant.Extract(body)
}
