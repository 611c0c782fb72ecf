package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/tripnorth/tripnorth/app/observability/metrics"
)

// CompletionRequest describes a single prompt-completion call. JSONMode
// constrains the provider response format to a JSON object and should be
// paired with a low temperature.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
	JSONMode     bool
}

// CompletionClient executes a single prompt-completion request against an
// LLM provider. Failures are *CompletionError values when the provider
// reported a classifiable error.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ErrorKind distinguishes the provider-reported failure classes callers
// care about.
type ErrorKind int

const (
	KindProvider ErrorKind = iota
	KindQuota
	KindRateLimit
)

// CompletionError wraps a provider failure with its classified kind. The
// message keeps the provider's original wording so substring-based
// classification downstream still works.
type CompletionError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("completion failed: %s", e.Message)
}

// Ensure implementation satisfies the interface
var _ CompletionClient = (*AIClient)(nil)

// AIClient is the Gemini-backed CompletionClient.
type AIClient struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func NewAIClient(ctx context.Context, model string, logger *slog.Logger) (*AIClient, error) {
	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GOOGLE_GEMINI_API_KEY environment variable is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &AIClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (ai *AIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	interactionID := uuid.New().String()
	l := ai.logger.With(
		slog.String("method", "Complete"),
		slog.String("interaction_id", interactionID),
		slog.String("model", ai.model),
		slog.Bool("json_mode", req.JSONMode),
	)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}
	if req.JSONMode {
		config.ResponseMIMEType = "application/json"
	}

	start := time.Now()
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(req.UserPrompt), config)
	if m := metrics.Get(); m != nil {
		m.CompletionCallsTotal.Add(ctx, 1)
	}
	if err != nil {
		cerr := classifyProviderError(err)
		l.ErrorContext(ctx, "Completion call failed",
			slog.Any("error", err),
			slog.Int("status_code", cerr.StatusCode),
			slog.Duration("latency", time.Since(start)),
		)
		return "", cerr
	}

	text := result.Text()
	if text == "" {
		l.WarnContext(ctx, "Completion returned no content")
		return "", &CompletionError{Kind: KindProvider, Message: "no content in completion response"}
	}

	l.InfoContext(ctx, "Completion call succeeded",
		slog.Int("response_chars", len(text)),
		slog.Duration("latency", time.Since(start)),
	)
	return text, nil
}

// classifyProviderError maps a genai transport error onto a CompletionError,
// keeping the provider message intact.
func classifyProviderError(err error) *CompletionError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		kind := KindProvider
		switch {
		case apiErr.Code == 429:
			kind = KindRateLimit
		case apiErr.Status == "RESOURCE_EXHAUSTED":
			kind = KindQuota
		}
		return &CompletionError{
			Kind:       kind,
			StatusCode: apiErr.Code,
			Message:    apiErr.Message,
		}
	}
	return &CompletionError{Kind: KindProvider, Message: err.Error()}
}
