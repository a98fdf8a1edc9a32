package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tieubaoca/eduinsights-be/types"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port            string  `mapstructure:"port"`
	Provider        string  `mapstructure:"provider"`
	AIEndpoint      string  `mapstructure:"ai_endpoint"`
	Model           string  `mapstructure:"model"`
	OpenAIAPIKey    string  `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys   string  `mapstructure:"GEMINI_API_KEYS"`
	MaxTokens       int     `mapstructure:"max_tokens"`
	Temperature     float32 `mapstructure:"temperature"`
	UploadDir       string  `mapstructure:"upload_dir"`
	MaxChunkSize    int     `mapstructure:"max_chunk_size"`
	SessionTTLHours int     `mapstructure:"session_ttl_hours"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("provider", ProviderOpenAI)
	v.SetDefault("model", "gpt-3.5-turbo")
	v.SetDefault("max_tokens", 1500)
	v.SetDefault("temperature", 0.7)
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("max_chunk_size", 3000)
	v.SetDefault("session_ttl_hours", 2)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEYS")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// GeminiKeys splits the comma-separated GEMINI_API_KEYS value.
func (c *Config) GeminiKeys() []string {
	if c.GeminiAPIKeys == "" {
		return nil
	}
	parts := strings.Split(c.GeminiAPIKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// HasCredential reports whether the selected provider has an API key.
// Document processing must not be offered without one.
func (c *Config) HasCredential() bool {
	switch c.Provider {
	case ProviderGemini:
		return len(c.GeminiKeys()) > 0
	default:
		return c.OpenAIAPIKey != ""
	}
}

// Validate checks the credential precondition for the selected provider.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown provider: %s", c.Provider)
	}
	if !c.HasCredential() {
		if c.Provider == ProviderGemini {
			return &types.ConfigurationError{Setting: "GEMINI_API_KEYS"}
		}
		return &types.ConfigurationError{Setting: "OPENAI_API_KEY"}
	}
	return nil
}
