// Package safety decides whether a filesystem path is safe to delete. The
// decision procedure layers persisted verdicts, a static rule table,
// AI-assisted judgment and a heuristic fallback.
package safety

import "fmt"

// Tier is the safety level assigned to a path
type Tier int

const (
	// TierGrey means not yet assessed; it is a placeholder, not a verdict.
	TierGrey Tier = iota
	// TierGreen means safe to delete.
	TierGreen
	// TierOrange means deletion needs user judgment.
	TierOrange
	// TierRed means deletion is forbidden.
	TierRed
)

// String returns the canonical lowercase tier name
func (t Tier) String() string {
	switch t {
	case TierGreen:
		return "green"
	case TierOrange:
		return "orange"
	case TierRed:
		return "red"
	default:
		return "grey"
	}
}

// ParseTier parses a tier name as produced by String or by an AI provider.
// Grey is intentionally not parseable from provider responses.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "green":
		return TierGreen, nil
	case "orange":
		return TierOrange, nil
	case "red":
		return TierRed, nil
	case "grey":
		return TierGrey, nil
	default:
		return TierGrey, fmt.Errorf("unknown safety tier %q", s)
	}
}

// MarshalYAML implements yaml.Marshaler
func (t Tier) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *Tier) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Source identifies where a verdict came from
type Source string

const (
	SourceCache     Source = "cache"
	SourceRule      Source = "rule"
	SourceAI        Source = "ai"
	SourceHeuristic Source = "heuristic"
)

// Verdict is a safety tier plus its justification and provenance. Grey
// verdicts carry an empty Source and are never persisted.
type Verdict struct {
	Tier   Tier   `yaml:"tier"`
	Reason string `yaml:"reason"`
	Source Source `yaml:"source"`
}

// Unknown returns the placeholder verdict for an unassessed path
func Unknown() Verdict {
	return Verdict{
		Tier:   TierGrey,
		Reason: "Safety level unknown. Request AI analysis for details.",
	}
}
