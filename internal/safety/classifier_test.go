package safety

import (
	"context"
	"errors"
	"testing"
)

type stubAssist struct {
	verdict Verdict
	err     error
	calls   int
}

func (s *stubAssist) Judge(ctx context.Context, path string) (Verdict, error) {
	s.calls++
	return s.verdict, s.err
}

func newTestClassifier(assist Assist) *Classifier {
	home := "/home/alice"
	return NewClassifier(DefaultRuleTable(home), NewCache(), assist, home)
}

func TestClassifyRuleHit(t *testing.T) {
	c := newTestClassifier(nil)

	v := c.Classify("~/Library/Caches/com.example.App/blob")
	if v.Tier != TierGreen {
		t.Errorf("tier = %s, want green", v.Tier)
	}
	if v.Source != SourceRule {
		t.Errorf("source = %s, want %s", v.Source, SourceRule)
	}

	// Same path spelled differently must classify identically.
	again := c.Classify("/home/alice/Library/Caches/com.example.App/blob")
	if again != v {
		t.Errorf("normalized spelling gave %+v, want %+v", again, v)
	}
}

func TestClassifyUnmatchedIsGrey(t *testing.T) {
	c := newTestClassifier(nil)

	v := c.Classify("/srv/data/records.db")
	if v.Tier != TierGrey {
		t.Errorf("tier = %s, want grey", v.Tier)
	}
	if c.cache.Len() != 0 {
		t.Errorf("cache holds %d entries, want 0: grey must never be cached", c.cache.Len())
	}
}

func TestClassifyIdempotent(t *testing.T) {
	c := newTestClassifier(nil)

	paths := []string{
		"~/Library/Caches/x",
		"~/Documents/report.pdf",
		"/etc/hosts",
		"/srv/data/records.db",
	}
	for _, p := range paths {
		first := c.Classify(p)
		for i := 0; i < 3; i++ {
			if got := c.Classify(p); got != first {
				t.Errorf("Classify(%q) call %d returned %+v, want %+v", p, i, got, first)
			}
		}
	}
}

func TestClassifyPrefersCache(t *testing.T) {
	c := newTestClassifier(nil)

	stored := Verdict{Tier: TierRed, Reason: "previously judged", Source: SourceAI}
	c.cache.Put("/srv/data/records.db", stored)

	v := c.Classify("/srv/data/records.db")
	if v.Tier != TierRed {
		t.Errorf("tier = %s, want red", v.Tier)
	}
	if v.Source != SourceCache {
		t.Errorf("source = %s, want %s", v.Source, SourceCache)
	}
	if v.Reason != stored.Reason {
		t.Errorf("reason = %q, want %q", v.Reason, stored.Reason)
	}
}

func TestClassifyWithAssistSuccess(t *testing.T) {
	stub := &stubAssist{verdict: Verdict{Tier: TierGreen, Reason: "build artifacts"}}
	c := newTestClassifier(stub)

	v := c.ClassifyWithAssist(context.Background(), "/srv/build/output", true)
	if v.Tier != TierGreen {
		t.Errorf("tier = %s, want green", v.Tier)
	}
	if v.Source != SourceAI {
		t.Errorf("source = %s, want %s", v.Source, SourceAI)
	}
	if stub.calls != 1 {
		t.Errorf("provider called %d times, want 1", stub.calls)
	}

	// The verdict must be persisted: later calls come from the cache and
	// never re-query the provider.
	again := c.ClassifyWithAssist(context.Background(), "/srv/build/output", true)
	if again.Source != SourceCache {
		t.Errorf("second call source = %s, want %s", again.Source, SourceCache)
	}
	if again.Tier != TierGreen || again.Reason != v.Reason {
		t.Errorf("second call returned %+v, want tier/reason of %+v", again, v)
	}
	if stub.calls != 1 {
		t.Errorf("provider called %d times after cached hit, want 1", stub.calls)
	}
}

func TestClassifyWithAssistProviderFailure(t *testing.T) {
	stub := &stubAssist{err: errors.New("provider unavailable")}
	c := newTestClassifier(stub)

	v := c.ClassifyWithAssist(context.Background(), "/x/MyApp.cache", true)
	if v.Tier != TierGreen {
		t.Errorf("tier = %s, want green from the heuristic", v.Tier)
	}
	if v.Source != SourceHeuristic {
		t.Errorf("source = %s, want %s", v.Source, SourceHeuristic)
	}
}

func TestClassifyWithAssistDisabled(t *testing.T) {
	stub := &stubAssist{verdict: Verdict{Tier: TierRed, Reason: "never used"}}
	c := newTestClassifier(stub)

	v := c.ClassifyWithAssist(context.Background(), "/x/MyApp.cache", false)
	if v.Source != SourceHeuristic {
		t.Errorf("source = %s, want %s", v.Source, SourceHeuristic)
	}
	if stub.calls != 0 {
		t.Errorf("provider called %d times while disabled, want 0", stub.calls)
	}
}

func TestClassifyWithAssistHeuristicDeterminism(t *testing.T) {
	// Two classifiers with no provider must agree on the same path, and a
	// fresh classifier must agree with a cached one.
	a := newTestClassifier(nil)
	b := newTestClassifier(nil)

	va := a.ClassifyWithAssist(context.Background(), "/x/MyApp.cache", true)
	vb := b.ClassifyWithAssist(context.Background(), "/x/MyApp.cache", true)
	if va.Tier != vb.Tier || va.Reason != vb.Reason {
		t.Errorf("independent classifiers disagree: %+v vs %+v", va, vb)
	}

	cached := a.ClassifyWithAssist(context.Background(), "/x/MyApp.cache", true)
	if cached.Tier != va.Tier || cached.Reason != va.Reason {
		t.Errorf("cached verdict %+v differs from original %+v", cached, va)
	}
	if cached.Source != SourceCache {
		t.Errorf("cached source = %s, want %s", cached.Source, SourceCache)
	}
}
