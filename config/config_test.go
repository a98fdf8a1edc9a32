package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tieubaoca/eduinsights-be/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	path := writeConfigFile(t, `
port: "9090"
provider: "openai"
model: "gpt-4o-mini"
upload_dir: "tmp-uploads"
max_chunk_size: 2000
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.MaxChunkSize != 2000 {
		t.Errorf("MaxChunkSize = %d, want 2000", cfg.MaxChunkSize)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q, want value from environment", cfg.OpenAIAPIKey)
	}
	if !cfg.HasCredential() {
		t.Error("HasCredential = false with OPENAI_API_KEY set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate error: %v", err)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	path := writeConfigFile(t, "port: \"8081\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want openai default", cfg.Provider)
	}
	if cfg.Model != "gpt-3.5-turbo" {
		t.Errorf("Model = %q, want gpt-3.5-turbo default", cfg.Model)
	}
	if cfg.MaxTokens != 1500 {
		t.Errorf("MaxTokens = %d, want 1500 default", cfg.MaxTokens)
	}
	if cfg.MaxChunkSize != 3000 {
		t.Errorf("MaxChunkSize = %d, want 3000 default", cfg.MaxChunkSize)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate_MissingCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	path := writeConfigFile(t, "port: \"8080\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.HasCredential() {
		t.Error("HasCredential = true without API key")
	}

	err = cfg.Validate()
	var configErr *types.ConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("Validate err = %v, want ConfigurationError", err)
	}
	if configErr.Setting != "OPENAI_API_KEY" {
		t.Errorf("Setting = %q, want OPENAI_API_KEY", configErr.Setting)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "mystery"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestGeminiKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "empty", raw: "", want: 0},
		{name: "single", raw: "key1", want: 1},
		{name: "several with spaces", raw: " key1 , key2 ,key3", want: 3},
		{name: "trailing comma", raw: "key1,", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{GeminiAPIKeys: tt.raw}
			if got := cfg.GeminiKeys(); len(got) != tt.want {
				t.Errorf("GeminiKeys(%q) = %v, want %d keys", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHasCredential_Gemini(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini}
	if cfg.HasCredential() {
		t.Error("HasCredential = true without gemini keys")
	}
	cfg.GeminiAPIKeys = "k1,k2"
	if !cfg.HasCredential() {
		t.Error("HasCredential = false with gemini keys set")
	}
}
