package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cleansweep/cleansweep/internal/progress"
)

func newTestEngine(t *testing.T) (*Engine, *DirCache) {
	t.Helper()
	cache := NewDirCache()
	return NewEngine(cache, progress.NewReporter(), t.TempDir()), cache
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanSizeAccounting(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), 10)
	writeFile(t, filepath.Join(dir, "b", "c"), 5)

	target := filepath.Join(t.TempDir(), "big")
	writeFile(t, target, 100)
	if err := os.Symlink(target, filepath.Join(dir, "s")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	engine, _ := newTestEngine(t)
	result, err := engine.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []struct {
		name string
		size uint64
	}{
		{"a", 10},
		{"b", 5},
		{"s", 0}, // symlink target never counted
	}
	if len(result.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(result.Entries), len(want))
	}
	for i, w := range want {
		e := result.Entries[i]
		if e.Name != w.name || e.SizeBytes != w.size {
			t.Errorf("entry %d = %s:%d, want %s:%d", i, e.Name, e.SizeBytes, w.name, w.size)
		}
	}
	if result.TotalSize != 15 {
		t.Errorf("total size = %d, want 15", result.TotalSize)
	}
}

func TestScanSortsTiesByPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "zeta"), 7)
	writeFile(t, filepath.Join(dir, "alpha"), 7)
	writeFile(t, filepath.Join(dir, "mid"), 7)

	engine, _ := newTestEngine(t)
	result, err := engine.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	got := []string{result.Entries[0].Name, result.Entries[1].Name, result.Entries[2].Name}
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestScanCacheHit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), 10)

	engine, cache := newTestEngine(t)
	first, err := engine.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", cache.Len())
	}

	// New file on disk: the cached result is served unchanged until the
	// entry is invalidated.
	writeFile(t, filepath.Join(dir, "late"), 99)
	second, err := engine.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if second != first {
		t.Error("expected the cached result, got a fresh scan")
	}

	engine.Invalidate(dir)
	third, err := engine.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(third.Entries) != 2 {
		t.Errorf("rescan found %d entries, want 2", len(third.Entries))
	}
}

func TestScanListError(t *testing.T) {
	engine, cache := newTestEngine(t)

	_, err := engine.Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	var listErr *ListError
	if !errors.As(err, &listErr) {
		t.Fatalf("err = %v, want *ListError", err)
	}
	if cache.Len() != 0 {
		t.Errorf("cache holds %d entries after a failed listing, want 0", cache.Len())
	}
}

func TestScanCancelled(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d"} {
		writeFile(t, filepath.Join(dir, name), 1)
	}

	engine, cache := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Scan(ctx, dir)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if cache.Len() != 0 {
		t.Errorf("cache holds %d entries after cancellation, want 0", cache.Len())
	}
}

func TestScanInaccessibleChildIsZero(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	writeFile(t, filepath.Join(locked, "hidden"), 50)
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	engine, _ := newTestEngine(t)
	result, err := engine.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(result.Entries))
	}
	if result.Entries[0].SizeBytes != 0 {
		t.Errorf("inaccessible directory size = %d, want 0", result.Entries[0].SizeBytes)
	}
}

func TestInvalidateParents(t *testing.T) {
	parent := t.TempDir()
	writeFile(t, filepath.Join(parent, "victim"), 10)

	engine, cache := newTestEngine(t)
	if _, err := engine.Scan(context.Background(), parent); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", cache.Len())
	}

	engine.InvalidateParents([]string{filepath.Join(parent, "victim")})
	if cache.Len() != 0 {
		t.Errorf("cache holds %d entries after parent invalidation, want 0", cache.Len())
	}
}

func TestSubtreeSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x"), 3)
	writeFile(t, filepath.Join(dir, "sub", "y"), 4)
	writeFile(t, filepath.Join(dir, "sub", "deeper", "z"), 5)

	size, err := SubtreeSize(context.Background(), dir)
	if err != nil {
		t.Fatalf("SubtreeSize failed: %v", err)
	}
	if size != 12 {
		t.Errorf("size = %d, want 12", size)
	}

	// A plain file reports its own length.
	size, err = SubtreeSize(context.Background(), filepath.Join(dir, "x"))
	if err != nil {
		t.Fatalf("SubtreeSize failed: %v", err)
	}
	if size != 3 {
		t.Errorf("file size = %d, want 3", size)
	}

	// A missing path reports zero, not an error.
	size, err = SubtreeSize(context.Background(), filepath.Join(dir, "missing"))
	if err != nil || size != 0 {
		t.Errorf("missing path = (%d, %v), want (0, nil)", size, err)
	}
}
