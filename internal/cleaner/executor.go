package cleaner

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cleansweep/cleansweep/internal/progress"
	"github.com/cleansweep/cleansweep/internal/scanner"
)

// ExecuteResult is the per-batch outcome of a deletion run
type ExecuteResult struct {
	Deleted   []string
	Errors    []*DeletionError
	FreedSize uint64
	// Messages holds one human-readable line per attempted path, in
	// execution order.
	Messages []string
}

// DeletedCount returns how many paths were removed
func (r *ExecuteResult) DeletedCount() int { return len(r.Deleted) }

// ErrorCount returns how many paths failed
func (r *ExecuteResult) ErrorCount() int { return len(r.Errors) }

// Executor deletes paths and keeps the scan cache honest afterwards
type Executor struct {
	engine   *scanner.Engine
	reporter *progress.Reporter
}

// NewExecutor creates an executor. engine may be nil when no scan cache
// needs invalidating (e.g. quick-clean runs).
func NewExecutor(engine *scanner.Engine, reporter *progress.Reporter) *Executor {
	return &Executor{engine: engine, reporter: reporter}
}

// Execute deletes each path independently: directories with their full
// contents, files singly. A path that has already vanished counts as
// deleted. Afterwards every affected parent's cached scan is invalidated.
func (e *Executor) Execute(paths []string) *ExecuteResult {
	result := &ExecuteResult{}
	start := time.Now()

	for _, path := range paths {
		e.publish(&progress.DeleteProgress{
			Phase:       progress.PhaseDeleting,
			CurrentPath: path,
			Deleted:     len(result.Deleted),
			Failed:      len(result.Errors),
			Total:       len(paths),
			FreedSize:   int64(result.FreedSize),
			StartTime:   start,
		})

		size, err := e.deletePath(path)
		if err != nil {
			delErr := CategorizeError(path, err)
			if delErr.Reason == ErrorFileNotFound {
				// Someone else removed it; the space is reclaimed either way.
				result.Deleted = append(result.Deleted, path)
				result.Messages = append(result.Messages, fmt.Sprintf("Already gone: %s", path))
				continue
			}
			result.Errors = append(result.Errors, delErr)
			result.Messages = append(result.Messages, delErr.UserMessage())
			continue
		}

		result.Deleted = append(result.Deleted, path)
		result.FreedSize += size
		result.Messages = append(result.Messages, fmt.Sprintf("Deleted: %s", path))
	}

	if e.engine != nil {
		e.engine.InvalidateParents(paths)
	}

	e.publish(&progress.DeleteProgress{
		Phase:     progress.PhaseComplete,
		Deleted:   len(result.Deleted),
		Failed:    len(result.Errors),
		Total:     len(paths),
		FreedSize: int64(result.FreedSize),
		StartTime: start,
	})
	return result
}

// deletePath removes one path and returns how many bytes it held
func (e *Executor) deletePath(path string) (uint64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}

	if info.IsDir() {
		size := dirSize(path)
		if err := os.RemoveAll(path); err != nil {
			return 0, err
		}
		return size, nil
	}

	if err := os.Remove(path); err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

// dirSize sums a directory's subtree without a cancellation hook; deletion
// is not cancellable once started.
func dirSize(path string) uint64 {
	var total uint64
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			total += dirSize(child)
			continue
		}
		if info, err := entry.Info(); err == nil {
			total += uint64(info.Size())
		}
	}
	return total
}

func (e *Executor) publish(event *progress.DeleteProgress) {
	if e.reporter != nil {
		e.reporter.Publish(event)
	}
}
