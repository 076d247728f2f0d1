package llm

import (
	"context"

	"github.com/rpatil/sowcheck/internal/model"
)

// DefaultSystemPrompt frames every completion request. Individual prompts
// carry the actual validation contract.
const DefaultSystemPrompt = "You are an expert contract reviewer validating Statement of Work (SOW) documents for completeness, clarity, consistency, and accuracy."

// Provider is the completion oracle: one prompt in, raw text out. No
// streaming and no server-side output-shape enforcement; shape recovery is
// entirely the parser's job.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a single completion request and returns the raw text
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one completion call
type CompletionRequest struct {
	// Model is the specific model to use (provider-specific)
	Model string

	// Prompt is the full user prompt, including the output contract
	Prompt string

	// System overrides DefaultSystemPrompt when set
	System string

	// MaxTokens limits the response length
	MaxTokens int
}

// CompletionResponse contains the oracle's raw output
type CompletionResponse struct {
	// Text is the raw response text, untrimmed of any formatting the model added
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds oracle provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Model:     "",
		Timeout:   60,
		MaxTokens: 2000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:   c.Provider,
		Model:      c.Model,
		APIKey:     c.APIKey,
		BaseURL:    c.BaseURL,
		Timeout:    c.Timeout,
		MaxTokens:  c.MaxTokens,
		HTTPProxy:  c.HTTPProxy,
		HTTPSProxy: c.HTTPSProxy,
		NoProxy:    c.NoProxy,
	}
}
