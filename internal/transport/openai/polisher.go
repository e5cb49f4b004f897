package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/acadex-io/acadex/internal/domain"
	"github.com/acadex-io/acadex/internal/metrics"
)

const systemPrompt = "You rewrite academic advisory answers for clarity and a friendly " +
	"tone. Use ONLY the facts already present in the answer and the source documents. " +
	"Never invent numbers, dates, or requirements. Keep the answer short and structured."

// Polisher rewrites templated answers via an OpenAI-compatible chat API.
// It is strictly optional: the pipeline renders a full answer without it.
type Polisher struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	logger    *zap.Logger
}

// Config holds the polisher provider settings.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxTokens  int
	TimeoutSec int
	Logger     *zap.Logger
}

// NewPolisher creates an OpenAI-compatible answer polisher.
func NewPolisher(cfg *Config) (*Polisher, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("polisher API key is required: %w", domain.ErrPolisherUnavailable)
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 600
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Polisher{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// Polish implements respond.Polisher.
func (p *Polisher) Polish(ctx context.Context, answer string, sources []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(answer, sources)},
		},
		MaxTokens:   p.maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		metrics.PolishRequestsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		metrics.PolishRequestsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("empty completion response: %w", domain.ErrPolisherUnavailable)
	}

	metrics.PolishRequestsTotal.WithLabelValues("ok").Inc()
	p.logger.Debug("answer polished",
		zap.String("model", p.model),
		zap.Duration("latency", time.Since(start)),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// HealthCheck reports whether the provider is reachable.
func (p *Polisher) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if _, err := p.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

func buildPrompt(answer string, sources []string) string {
	var b strings.Builder
	b.WriteString("Source documents:\n")
	if len(sources) == 0 {
		b.WriteString("(none)\n")
	}
	for _, s := range sources {
		b.WriteString("- ")
		b.WriteString(s)
		b.WriteByte('\n')
	}
	b.WriteString("\nAnswer to rewrite:\n")
	b.WriteString(answer)
	return b.String()
}
