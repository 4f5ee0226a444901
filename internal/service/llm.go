package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// maxTemperature is the upper bound of the sampling range accepted by the
// OpenAI chat completions API.
const maxTemperature = 2.0

// GenerateOptions carries the per-request settings for a single completion.
type GenerateOptions struct {
	// Temperature controls sampling randomness, within [0, 2].
	Temperature float64

	// Credential, when set, overrides the environment default API key for
	// this call only.
	Credential string
}

// LLMService submits rendered prompts to the OpenAI chat completions API
// and returns the generated text. It holds no per-request state and is
// safe for concurrent use.
type LLMService struct {
	client openai.Client
	model  string
}

// NewLLMService creates a new LLMService instance
func NewLLMService() (*LLMService, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		apiKeyFile := os.Getenv("OPENAI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}

	// Retrying is left to the caller, so exactly one outbound request is
	// made per invocation.
	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if apiURL := os.Getenv("OPENAI_API_URL"); apiURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(apiURL))
	}

	return &LLMService{
		client: openai.NewClient(clientOpts...),
		model:  model,
	}, nil
}

// Complete sends a single chat completion request for the rendered prompt
// and returns the whitespace-trimmed generated text.
func (s *LLMService) Complete(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt must not be empty", ErrInvalidInput)
	}
	if opts.Temperature < 0 || opts.Temperature > maxTemperature {
		return "", fmt.Errorf("%w: temperature %.2f is outside [0, %.0f]", ErrInvalidInput, opts.Temperature, maxTemperature)
	}

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(s.model),
		Temperature: openai.Float(opts.Temperature),
	}

	var reqOpts []option.RequestOption
	if opts.Credential != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(opts.Credential))
	}

	completion, err := s.client.Chat.Completions.New(ctx, params, reqOpts...)
	if err != nil {
		return "", classifyCompletionError(err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: completion contained no choices", ErrEmptyResult)
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: completion content was blank", ErrEmptyResult)
	}

	return text, nil
}

// classifyCompletionError maps API and transport failures onto the
// pipeline's error kinds.
func classifyCompletionError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == http.StatusUnauthorized || apierr.StatusCode == http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAuthentication, err)
		case apierr.StatusCode == http.StatusRequestTimeout ||
			apierr.StatusCode == http.StatusTooManyRequests ||
			apierr.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %v", ErrTransient, err)
		default:
			return fmt.Errorf("chat completion request failed: %w", err)
		}
	}

	// Everything else is a transport-level failure: timeouts, refused
	// connections, cancelled contexts.
	return fmt.Errorf("%w: %v", ErrTransient, err)
}
