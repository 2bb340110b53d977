// Package cleaner validates and executes batch deletions. The gate is
// all-or-nothing: one forbidden path blocks the whole batch. Execution is
// the opposite: each path is deleted independently and one failure never
// stops the rest.
package cleaner

import (
	"sort"

	"github.com/cleansweep/cleansweep/internal/safety"
)

// BlockedPath is a path the gate refused, with its verdict
type BlockedPath struct {
	Path    string
	Verdict safety.Verdict
}

// Plan is the gate's decision for a batch. A rejected plan lists every
// forbidden path found, not just the first.
type Plan struct {
	Accepted []string
	Blocked  []BlockedPath
}

// Rejected reports whether the batch was refused
func (p *Plan) Rejected() bool {
	return len(p.Blocked) > 0
}

// Gate validates deletion batches against the safety classifier
type Gate struct {
	classifier *safety.Classifier
}

// NewGate creates a deletion gate over the given classifier
func NewGate(classifier *safety.Classifier) *Gate {
	return &Gate{classifier: classifier}
}

// PlanDeletion classifies every path in the batch using cache and rules
// only; AI assist is never invoked here. Any red-tier path rejects the
// whole batch.
func (g *Gate) PlanDeletion(paths []string) *Plan {
	plan := &Plan{}

	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	for _, path := range sorted {
		verdict := g.classifier.Classify(path)
		if verdict.Tier == safety.TierRed {
			plan.Blocked = append(plan.Blocked, BlockedPath{Path: path, Verdict: verdict})
			continue
		}
		plan.Accepted = append(plan.Accepted, path)
	}

	if plan.Rejected() {
		plan.Accepted = nil
	}
	return plan
}
