package aiassist

import (
	"fmt"
	"strings"
)

// BuildConfig contains provider-specific runtime settings used by the factory.
type BuildConfig struct {
	Name   string
	Model  string
	Host   string
	APIKey string
}

// NewFromConfig builds a retrying client around the configured provider.
func NewFromConfig(cfg BuildConfig) (*Client, error) {
	var (
		p   Provider
		err error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Name)) {
	case "gemini", "":
		p, err = NewGemini(cfg.Host, cfg.Model, cfg.APIKey)
	case "openai":
		p, err = NewOpenAI(cfg.Host, cfg.Model, cfg.APIKey)
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Name)
	}
	if err != nil {
		return nil, err
	}
	return NewClient(p), nil
}
