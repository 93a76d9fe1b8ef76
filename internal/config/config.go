package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type SearchConfig struct {
	APIKey   string `toml:"api_key"`
	EngineID string `toml:"engine_id"`
}

type PipelineConfig struct {
	// MaxKeywords caps the flattened keyword list. Defaults to 20.
	MaxKeywords int `toml:"max_keywords"`
	// NumCandidates is the default when a request omits it. Defaults to 5.
	NumCandidates int `toml:"num_candidates"`
	// RequestTimeoutSeconds bounds each external call. 0 disables the bound.
	RequestTimeoutSeconds int `toml:"request_timeout_seconds"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	LLM      LLMConfig      `toml:"llm"`
	Search   SearchConfig   `toml:"search"`
	Pipeline PipelineConfig `toml:"pipeline"`
	Server   ServerConfig   `toml:"server"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault reads the config file when it exists, otherwise starts from
// zero values. An absent file is not an error: with no credentials configured
// every external-dependent stage runs in fallback mode.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = &Config{}
	} else if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.Search.APIKey = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_ENGINE_ID"); v != "" {
		c.Search.EngineID = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}

// ApplyDefaults fills in the documented defaults for anything still unset.
func (c *Config) ApplyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "groq"
	}
	if c.Pipeline.MaxKeywords <= 0 {
		c.Pipeline.MaxKeywords = 20
	}
	if c.Pipeline.NumCandidates <= 0 {
		c.Pipeline.NumCandidates = 5
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
}
