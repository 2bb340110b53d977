package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.AIEnabled() {
		t.Error("default settings should enable AI")
	}
	if !s.CacheResults() {
		t.Error("default settings should cache results")
	}
	if s.PreferredProvider() != "gemini" {
		t.Errorf("default provider = %q, want gemini", s.PreferredProvider())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	s := Default()
	s.AI.Provider = "openai"
	s.AI.OpenAIAPIKey = "sk-test"
	s.AI.Enabled = false
	s.Cache.Results = false

	if err := Save(s, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.PreferredProvider() != "openai" {
		t.Errorf("provider = %q, want openai", loaded.PreferredProvider())
	}
	if loaded.APIKey() != "sk-test" {
		t.Errorf("APIKey = %q, want sk-test", loaded.APIKey())
	}
	if loaded.AIEnabled() {
		t.Error("AIEnabled should be false")
	}
	if loaded.CacheResults() {
		t.Error("CacheResults should be false")
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ai:\n  provider: skynet\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unsupported provider")
	}
}

func TestAPIKeyEnvFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	s := Default()
	if s.APIKey() != "env-key" {
		t.Errorf("APIKey = %q, want env-key", s.APIKey())
	}

	// An explicit key wins over the environment.
	s.AI.GeminiAPIKey = "file-key"
	if s.APIKey() != "file-key" {
		t.Errorf("APIKey = %q, want file-key", s.APIKey())
	}
}

func TestHasCredential(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	s := Default()
	if s.HasCredential() {
		t.Error("no credential configured, HasCredential should be false")
	}

	s.AI.GeminiAPIKey = "k"
	if !s.HasCredential() {
		t.Error("HasCredential should be true once a key is set")
	}
}
