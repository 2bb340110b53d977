// Package aiassist obtains safety judgments for filesystem paths from an
// LLM backend. Providers normalize different APIs (Gemini, OpenAI) into a
// single Judge call; the Client adds the retry and timeout budget.
package aiassist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cleansweep/cleansweep/internal/safety"
)

const errorBodyLimit = 512

// Judgment is a provider's safety assessment of a single path.
type Judgment struct {
	Tier   safety.Tier
	Reason string
}

// Provider assesses path safety through an LLM backend.
type Provider interface {
	// Assess judges a single normalized path. Implementations return an
	// error for transport failures and for responses that do not parse
	// into a valid judgment.
	Assess(ctx context.Context, path string) (Judgment, error)

	// Name returns the provider name (e.g., "gemini").
	Name() string
}

// assessPrompt is the instruction sent to every backend. The response
// contract is a single JSON object so parsing stays strict.
func assessPrompt(path string) string {
	return fmt.Sprintf(`You are a macOS/Linux disk cleanup safety expert. Assess whether deleting the following filesystem path is safe.

Path: %s

Respond with a single JSON object and nothing else:
{"tier": "<green|orange|red>", "reason": "<one sentence explanation>"}

Use "green" for files that are safe to delete and will be regenerated (caches, temp files, logs), "orange" for files that need user judgment (documents, settings, backups), and "red" for files whose deletion could break the system or applications.`, path)
}

// parseJudgment decodes and validates a provider response. Any deviation
// from the contract is an error so the caller can fall back.
func parseJudgment(text string) (Judgment, error) {
	text = strings.TrimSpace(text)

	// Some models wrap JSON in a markdown fence despite instructions.
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var decoded struct {
		Tier   string `json:"tier"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return Judgment{}, fmt.Errorf("decoding judgment: %w", err)
	}

	tier, err := safety.ParseTier(strings.ToLower(strings.TrimSpace(decoded.Tier)))
	if err != nil {
		return Judgment{}, fmt.Errorf("invalid judgment: %w", err)
	}
	if tier == safety.TierGrey {
		return Judgment{}, fmt.Errorf("invalid judgment: provider returned grey")
	}

	reason := strings.TrimSpace(decoded.Reason)
	if reason == "" {
		return Judgment{}, fmt.Errorf("invalid judgment: empty reason")
	}

	return Judgment{Tier: tier, Reason: reason}, nil
}

func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, errorBodyLimit))
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "unknown error"
	}
	return text
}
