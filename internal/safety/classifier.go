package safety

import (
	"context"

	"github.com/cleansweep/cleansweep/internal/pathutil"
)

// Assist is the external judgment provider boundary. Implementations are
// expected to enforce their own timeout and retry budget; any error simply
// routes the classifier to the heuristic fallback.
type Assist interface {
	Judge(ctx context.Context, path string) (Verdict, error)
}

// Classifier is the layered safety decision procedure: persisted verdicts,
// then static rules, then (on request) AI-assisted judgment with a
// heuristic fallback.
type Classifier struct {
	rules  *RuleTable
	cache  *Cache
	assist Assist
	home   string
}

// NewClassifier creates a Classifier over a rule table and verdict cache.
// assist may be nil when no provider is configured.
func NewClassifier(rules *RuleTable, cache *Cache, assist Assist, home string) *Classifier {
	return &Classifier{
		rules:  rules,
		cache:  cache,
		assist: assist,
		home:   home,
	}
}

// Classify returns the safety verdict for a path without performing any
// I/O beyond the cache lookup. An unmatched path yields a grey placeholder
// verdict, which is never cached.
func (c *Classifier) Classify(path string) Verdict {
	normalized := pathutil.NormalizeWithHome(path, c.home)

	if v, ok := c.cache.Get(normalized); ok {
		v.Source = SourceCache
		return v
	}

	if v, ok := c.rules.Match(normalized); ok {
		return v
	}

	return Unknown()
}

// ClassifyWithAssist resolves a grey path to a real verdict, consulting the
// AI provider when enabled and falling back to the heuristic otherwise.
// The result is persisted before returning, so later Classify calls see
// source=cache. Provider failures never propagate; they degrade to the
// heuristic.
func (c *Classifier) ClassifyWithAssist(ctx context.Context, path string, assistEnabled bool) Verdict {
	normalized := pathutil.NormalizeWithHome(path, c.home)

	if v, ok := c.cache.Get(normalized); ok {
		v.Source = SourceCache
		return v
	}

	var verdict Verdict
	if assistEnabled && c.assist != nil {
		if v, err := c.assist.Judge(ctx, normalized); err == nil {
			verdict = v
			verdict.Source = SourceAI
		} else {
			verdict = Heuristic(normalized)
		}
	} else {
		verdict = Heuristic(normalized)
	}

	// Persistence failure doesn't invalidate the verdict itself.
	_ = c.cache.Put(normalized, verdict)

	return verdict
}
