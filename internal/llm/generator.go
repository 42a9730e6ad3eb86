package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// caller is the subset of a langchaingo model the generator needs: a single
// prompt in, completed text out.
type caller interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// Generator adapts a langchaingo model to the domain.TextGenerator port.
type Generator struct {
	llm     caller
	model   string
	timeout time.Duration
}

// NewGenerator builds the generation backend selected by configuration.
// Supported providers are "openai" and "ollama".
func NewGenerator(cfg config.LLMConfig) (domain.TextGenerator, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIGenerator(cfg)
	case "ollama":
		return NewOllamaGenerator(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// NewOpenAIGenerator creates a generator backed by the OpenAI chat API.
func NewOpenAIGenerator(cfg config.LLMConfig) (domain.TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key cannot be empty")
	}
	opts := []openai.Option{openai.WithToken(cfg.APIKey)}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	logger.Get().Info("Initialized OpenAI generator", zap.String("model", cfg.Model))
	return &Generator{llm: llm, model: cfg.Model, timeout: cfg.Timeout}, nil
}

// NewOllamaGenerator creates a generator backed by a local Ollama server.
func NewOllamaGenerator(cfg config.LLMConfig) (domain.TextGenerator, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("Ollama server URL cannot be empty")
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}
	llm, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}
	logger.Get().Info("Initialized Ollama generator",
		zap.String("server_url", cfg.ServerURL),
		zap.String("model", cfg.Model),
	)
	return &Generator{llm: llm, model: cfg.Model, timeout: cfg.Timeout}, nil
}

// Generate performs a single-shot completion call with a bounded timeout.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	response, err := g.llm.Call(ctx, prompt, llms.WithTemperature(0.2))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}

var _ domain.TextGenerator = (*Generator)(nil)
