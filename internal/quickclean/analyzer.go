package quickclean

import (
	"context"
	"sync"
	"time"

	"github.com/cleansweep/cleansweep/internal/platform"
	"github.com/cleansweep/cleansweep/internal/progress"
)

// gatherWorkers is the fixed width of the category pool
const gatherWorkers = 4

// CategoryResult holds one category's gathered items, sorted by size
// descending.
type CategoryResult struct {
	ID        string
	Label     string
	Items     []Item
	TotalSize uint64
}

// Analyzer runs category gatherers across a bounded worker pool
type Analyzer struct {
	info     *platform.Info
	reporter *progress.Reporter
}

// NewAnalyzer creates an analyzer over the given platform roots
func NewAnalyzer(info *platform.Info, reporter *progress.Reporter) *Analyzer {
	return &Analyzer{info: info, reporter: reporter}
}

// Analyze gathers the requested categories concurrently. An empty ids list
// means all categories. A category whose root cannot be read contributes an
// empty result; nothing is fatal for the aggregation. Cancellation stops
// dispatch and returns what the context allows: callers should treat a
// cancelled context's results as incomplete.
func (a *Analyzer) Analyze(ctx context.Context, ids []string) []CategoryResult {
	selected := selectCategories(ids)
	results := make([]CategoryResult, len(selected))
	start := time.Now()

	jobs := make(chan int)
	var done int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < gatherWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				cat := selected[i]
				var items []Item
				if ctx.Err() == nil {
					items = cat.gather(ctx, a.info)
					sortItems(items)
				}

				var total uint64
				for _, item := range items {
					total += item.SizeBytes
				}
				results[i] = CategoryResult{
					ID:        cat.ID,
					Label:     cat.Label,
					Items:     items,
					TotalSize: total,
				}

				mu.Lock()
				done++
				a.publish(&progress.GatherProgress{
					Phase:           progress.PhaseGathering,
					Category:        cat.ID,
					ItemsFound:      len(items),
					TotalSize:       int64(total),
					CategoriesDone:  int(done),
					CategoriesTotal: len(selected),
					StartTime:       start,
				})
				mu.Unlock()
			}
		}()
	}

dispatch:
	for i := range selected {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	phase := progress.PhaseComplete
	if ctx.Err() != nil {
		phase = progress.PhaseCancelled
	}
	a.publish(&progress.GatherProgress{
		Phase:           phase,
		CategoriesDone:  int(done),
		CategoriesTotal: len(selected),
		StartTime:       start,
	})
	return results
}

func (a *Analyzer) publish(event *progress.GatherProgress) {
	if a.reporter != nil {
		a.reporter.Publish(event)
	}
}

func selectCategories(ids []string) []Category {
	all := Categories()
	if len(ids) == 0 {
		return all
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var selected []Category
	for _, cat := range all {
		if _, ok := wanted[cat.ID]; ok {
			selected = append(selected, cat)
		}
	}
	return selected
}
