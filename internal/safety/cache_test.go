package safety

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCachePutGet(t *testing.T) {
	c := NewCache()

	v := Verdict{Tier: TierGreen, Reason: "cache files", Source: SourceAI}
	if err := c.Put("/home/alice/.cache/app", v); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok := c.Get("/home/alice/.cache/app")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got != v {
		t.Errorf("got %+v, want %+v", got, v)
	}

	if _, ok := c.Get("/home/alice/other"); ok {
		t.Error("expected a miss for an unknown path")
	}
}

func TestCacheRejectsGrey(t *testing.T) {
	c := NewCache()

	if err := c.Put("/some/path", Unknown()); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("cache holds %d entries, want 0: grey is a placeholder, not a verdict", c.Len())
	}
}

func TestCacheDisabled(t *testing.T) {
	c := NewCache()
	c.SetEnabled(false)

	v := Verdict{Tier: TierGreen, Reason: "x", Source: SourceAI}
	if err := c.Put("/p", v); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, ok := c.Get("/p"); ok {
		t.Error("disabled cache must miss all reads")
	}

	c.SetEnabled(true)
	if _, ok := c.Get("/p"); ok {
		t.Error("writes made while disabled must have been dropped")
	}
}

func TestCachePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verdicts.yaml")

	c, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}

	v := Verdict{Tier: TierOrange, Reason: "user data", Source: SourceAI}
	if err := c.Put("/home/alice/Documents/report.pdf", v); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	reopened, err := OpenCache(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, ok := reopened.Get("/home/alice/Documents/report.pdf")
	if !ok {
		t.Fatal("expected the verdict to survive a reopen")
	}
	if got != v {
		t.Errorf("got %+v, want %+v", got, v)
	}
}

func TestCacheCorruptFileDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verdicts.yaml")
	if err := os.WriteFile(path, []byte("{{{not yaml"), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("corrupt store should start empty, got %d entries", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verdicts.yaml")

	c, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	c.Put("/a", Verdict{Tier: TierGreen, Reason: "x", Source: SourceAI})
	c.Put("/b", Verdict{Tier: TierRed, Reason: "y", Source: SourceAI})

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("cache holds %d entries after Clear, want 0", c.Len())
	}

	reopened, err := OpenCache(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if reopened.Len() != 0 {
		t.Errorf("persisted store holds %d entries after Clear, want 0", reopened.Len())
	}
}
