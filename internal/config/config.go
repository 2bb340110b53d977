// Package config holds the persisted application settings. Core components
// read settings through typed accessors and never parse the storage format
// themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleansweep/cleansweep/internal/platform"
	"gopkg.in/yaml.v3"
)

// Settings represents the application configuration
type Settings struct {
	AI    AIConfig    `yaml:"ai"`
	Cache CacheConfig `yaml:"cache"`
}

// AIConfig holds AI-assisted classification settings
type AIConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Provider     string `yaml:"provider"` // "gemini" or "openai"
	GeminiAPIKey string `yaml:"gemini_api_key"`
	OpenAIAPIKey string `yaml:"openai_api_key"`
}

// CacheConfig holds verdict-cache settings
type CacheConfig struct {
	Results bool `yaml:"results"` // persist classification verdicts
}

// Environment variable fallbacks for provider credentials.
const (
	envGeminiKey = "GEMINI_API_KEY"
	envOpenAIKey = "OPENAI_API_KEY"
)

// Default returns the default settings
func Default() *Settings {
	return &Settings{
		AI: AIConfig{
			Enabled:  true,
			Provider: "gemini",
		},
		Cache: CacheConfig{
			Results: true,
		},
	}
}

// Load loads settings from a file, falling back to defaults when the file
// does not exist.
func Load(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &s, nil
}

// Save saves settings to a file
func Save(s *Settings, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Validate validates the settings
func (s *Settings) Validate() error {
	switch s.AI.Provider {
	case "", "gemini", "openai":
	default:
		return fmt.Errorf("unsupported ai provider %q", s.AI.Provider)
	}
	return nil
}

// AIEnabled reports whether AI-assisted classification is enabled
func (s *Settings) AIEnabled() bool {
	return s.AI.Enabled
}

// CacheResults reports whether classification verdicts should be persisted
func (s *Settings) CacheResults() bool {
	return s.Cache.Results
}

// PreferredProvider returns the configured AI provider name
func (s *Settings) PreferredProvider() string {
	if s.AI.Provider == "" {
		return "gemini"
	}
	return s.AI.Provider
}

// APIKey returns the credential for the preferred provider, falling back to
// the provider's environment variable when the settings file has none.
func (s *Settings) APIKey() string {
	switch s.PreferredProvider() {
	case "gemini":
		if s.AI.GeminiAPIKey != "" {
			return s.AI.GeminiAPIKey
		}
		return os.Getenv(envGeminiKey)
	case "openai":
		if s.AI.OpenAIAPIKey != "" {
			return s.AI.OpenAIAPIKey
		}
		return os.Getenv(envOpenAIKey)
	}
	return ""
}

// HasCredential reports whether a usable API key is configured
func (s *Settings) HasCredential() bool {
	return s.APIKey() != ""
}

// DefaultPath returns the default settings path
func DefaultPath() (string, error) {
	configDir, err := platform.GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cleansweep", "config.yaml"), nil
}

// DefaultVerdictCachePath returns the default verdict-cache path
func DefaultVerdictCachePath() (string, error) {
	configDir, err := platform.GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cleansweep", "verdicts.yaml"), nil
}
