// Package progress provides thread-safe progress/result event reporting.
// Core operations publish typed events; presentation layers subscribe and
// render them. Core never touches presentation state directly.
package progress

import (
	"sync"
	"time"
)

// Phase represents the current phase of an operation
type Phase string

const (
	PhaseScanning  Phase = "scanning"
	PhaseGathering Phase = "gathering"
	PhaseDeleting  Phase = "deleting"
	PhaseComplete  Phase = "complete"
	PhaseCancelled Phase = "cancelled"
	PhaseError     Phase = "error"
)

// ScanProgress reports progress of a directory scan
type ScanProgress struct {
	Phase        Phase
	Dir          string
	CurrentPath  string
	EntriesDone  int
	EntriesTotal int
	TotalSize    int64
	StartTime    time.Time
	Err          error
}

// GatherProgress reports progress of a quick-clean analysis
type GatherProgress struct {
	Phase           Phase
	Category        string
	ItemsFound      int
	TotalSize       int64
	CategoriesDone  int
	CategoriesTotal int
	StartTime       time.Time
}

// DeleteProgress reports progress of a batch deletion
type DeleteProgress struct {
	Phase       Phase
	CurrentPath string
	Deleted     int
	Failed      int
	Total       int
	FreedSize   int64
	StartTime   time.Time
}

// Reporter provides thread-safe progress reporting with subscriber channels.
type Reporter struct {
	mu        sync.RWMutex
	listeners []chan interface{}
	lastScan  *ScanProgress
}

// NewReporter creates a new progress reporter
func NewReporter() *Reporter {
	return &Reporter{
		listeners: make([]chan interface{}, 0),
	}
}

// Subscribe returns a channel that receives progress updates
func (r *Reporter) Subscribe() <-chan interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan interface{}, 16)
	r.listeners = append(r.listeners, ch)
	return ch
}

// Unsubscribe closes and removes a listener channel
func (r *Reporter) Unsubscribe(ch <-chan interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, listener := range r.listeners {
		if listener == ch {
			close(listener)
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all listeners without blocking. A listener that
// cannot keep up misses intermediate updates rather than stalling the
// publishing worker.
func (r *Reporter) Publish(event interface{}) {
	r.mu.Lock()
	if sp, ok := event.(*ScanProgress); ok {
		r.lastScan = sp
	}
	listeners := make([]chan interface{}, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		select {
		case listener <- event:
		default:
		}
	}
}

// LastScan returns the most recently published scan progress
func (r *Reporter) LastScan() *ScanProgress {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastScan
}
