package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete sowcheck configuration
type Config struct {
	Search      SearchConfig      `yaml:"search"`
	LLM         LLMConfig         `yaml:"llm"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// SearchConfig configures the document-chunk search backend client
type SearchConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Index     string        `yaml:"index"`
	Limit     int           `yaml:"limit"` // max fragments per retrieval
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`

	HTTPProxy  string `yaml:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy,omitempty"`
	NoProxy    string `yaml:"no_proxy,omitempty"`
}

// LLMConfig configures the completion oracle
type LLMConfig struct {
	Provider  string `yaml:"provider"` // openai, anthropic, ollama
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`

	HTTPProxy  string `yaml:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy,omitempty"`
	NoProxy    string `yaml:"no_proxy,omitempty"`
}

// CacheConfig configures retrieval result caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig configures batch processing and outbound rate limits.
// Sections within one document are always processed sequentially; workers
// parallelize across documents only.
type ConcurrencyConfig struct {
	BatchWorkers int     `yaml:"batch_workers"`
	SearchRPS    float64 `yaml:"search_rps"`
	OracleRPS    float64 `yaml:"oracle_rps"`
	Burst        int     `yaml:"burst"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// defaultCacheDir places the durable cache next to the config file. An
// unresolvable home directory yields an empty dir, which callers treat as
// memory-only caching.
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sowcheck", "cache")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			BaseURL:   "http://localhost:8080",
			Index:     "sow_validation",
			Limit:     5,
			Timeout:   30 * time.Second,
			UserAgent: "sowcheck/0.1 (+https://github.com/rpatil/sowcheck)",
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4.1",
			Timeout:   60,
			MaxTokens: 2000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
			SearchRPS:    10,
			OracleRPS:    2,
			Burst:        5,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
