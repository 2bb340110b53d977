// Package scanner lists directories and computes subtree sizes with a
// bounded worker pool. Results are cached FIFO so revisiting a directory
// during navigation costs nothing.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/cleansweep/cleansweep/internal/pathutil"
	"github.com/cleansweep/cleansweep/internal/progress"
)

// scanWorkers is the fixed width of the size-computation pool
const scanWorkers = 4

// Entry is one immediate child of a scanned directory. Size is the full
// subtree total for directories; symlinks always report zero.
type Entry struct {
	Path       string
	Name       string
	IsDir      bool
	SizeBytes  uint64
	Accessible bool
}

// Result is the outcome of scanning one directory, children sorted by size
// descending with path as the tiebreaker.
type Result struct {
	Dir       string
	Entries   []Entry
	TotalSize uint64
	ScannedAt time.Time
}

// ListError reports that the directory itself could not be listed. The
// caller can still navigate elsewhere; only this path is terminal.
type ListError struct {
	Dir string
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("cannot list %s: %v", e.Dir, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

// Engine performs cached, cancellable directory scans
type Engine struct {
	cache    *DirCache
	reporter *progress.Reporter
	home     string
}

// NewEngine creates a scan engine over the given cache and reporter
func NewEngine(cache *DirCache, reporter *progress.Reporter, home string) *Engine {
	return &Engine{
		cache:    cache,
		reporter: reporter,
		home:     home,
	}
}

// Scan lists a directory's children and computes each child's subtree size
// across the worker pool. A cached result short-circuits without I/O.
// Cancellation returns context.Canceled and leaves the cache untouched.
func (e *Engine) Scan(ctx context.Context, dir string) (*Result, error) {
	normalized := pathutil.NormalizeWithHome(dir, e.home)
	start := time.Now()

	if cached, ok := e.cache.Get(normalized); ok {
		e.publish(&progress.ScanProgress{
			Phase:        progress.PhaseComplete,
			Dir:          normalized,
			EntriesDone:  len(cached.Entries),
			EntriesTotal: len(cached.Entries),
			TotalSize:    int64(cached.TotalSize),
			StartTime:    start,
		})
		return cached, nil
	}

	children, err := os.ReadDir(normalized)
	if err != nil {
		listErr := &ListError{Dir: normalized, Err: err}
		e.publish(&progress.ScanProgress{
			Phase:     progress.PhaseError,
			Dir:       normalized,
			StartTime: start,
			Err:       listErr,
		})
		return nil, listErr
	}

	entries := make([]Entry, len(children))
	jobs := make(chan int)
	var done int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < scanWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				entries[i] = e.sizeEntry(ctx, normalized, children[i])

				mu.Lock()
				done++
				e.publish(&progress.ScanProgress{
					Phase:        progress.PhaseScanning,
					Dir:          normalized,
					CurrentPath:  entries[i].Path,
					EntriesDone:  int(done),
					EntriesTotal: len(children),
					StartTime:    start,
				})
				mu.Unlock()
			}
		}()
	}

dispatch:
	for i := range children {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		e.publish(&progress.ScanProgress{
			Phase:     progress.PhaseCancelled,
			Dir:       normalized,
			StartTime: start,
		})
		return nil, context.Canceled
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SizeBytes != entries[j].SizeBytes {
			return entries[i].SizeBytes > entries[j].SizeBytes
		}
		return entries[i].Path < entries[j].Path
	})

	var total uint64
	for _, entry := range entries {
		total += entry.SizeBytes
	}

	result := &Result{
		Dir:       normalized,
		Entries:   entries,
		TotalSize: total,
		ScannedAt: time.Now(),
	}
	e.cache.Put(normalized, result)

	e.publish(&progress.ScanProgress{
		Phase:        progress.PhaseComplete,
		Dir:          normalized,
		EntriesDone:  len(entries),
		EntriesTotal: len(entries),
		TotalSize:    int64(total),
		StartTime:    start,
	})
	return result, nil
}

// sizeEntry computes the size of one child. Symlinks contribute zero and
// their targets are never followed; an inaccessible child degrades to zero
// instead of failing the scan.
func (e *Engine) sizeEntry(ctx context.Context, dir string, child os.DirEntry) Entry {
	path := filepath.Join(dir, child.Name())
	entry := Entry{
		Path:       path,
		Name:       child.Name(),
		IsDir:      child.IsDir(),
		Accessible: true,
	}

	if child.Type()&fs.ModeSymlink != 0 {
		return entry
	}

	if child.IsDir() {
		size, err := subtreeSize(ctx, path)
		if err != nil {
			return entry
		}
		entry.SizeBytes = size
		return entry
	}

	info, err := child.Info()
	if err != nil {
		entry.Accessible = false
		return entry
	}
	entry.SizeBytes = uint64(info.Size())
	return entry
}

// Invalidate drops the cached scan result for a directory
func (e *Engine) Invalidate(dir string) {
	e.cache.Invalidate(pathutil.NormalizeWithHome(dir, e.home))
}

// InvalidateParents drops the cached results for the parent directories of
// the given paths, so the next scan reflects deletions.
func (e *Engine) InvalidateParents(paths []string) {
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		parent := filepath.Dir(pathutil.NormalizeWithHome(p, e.home))
		if _, ok := seen[parent]; ok {
			continue
		}
		seen[parent] = struct{}{}
		e.cache.Invalidate(parent)
	}
}

func (e *Engine) publish(event *progress.ScanProgress) {
	if e.reporter != nil {
		e.reporter.Publish(event)
	}
}
