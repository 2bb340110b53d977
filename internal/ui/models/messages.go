package models

import (
	"github.com/cleansweep/cleansweep/internal/cleaner"
	"github.com/cleansweep/cleansweep/internal/quickclean"
	"github.com/cleansweep/cleansweep/internal/safety"
	"github.com/cleansweep/cleansweep/internal/scanner"
)

// ScanDoneMsg carries a finished directory scan
type ScanDoneMsg struct {
	Result *scanner.Result
}

// ScanFailedMsg carries a terminal scan error
type ScanFailedMsg struct {
	Dir string
	Err error
}

// VerdictMsg carries an on-demand classification for one path
type VerdictMsg struct {
	Path    string
	Verdict safety.Verdict
}

// AnalyzeDoneMsg carries a finished quick-clean analysis
type AnalyzeDoneMsg struct {
	Results []quickclean.CategoryResult
}

// PlanMsg carries the deletion gate's decision for the current selection
type PlanMsg struct {
	Plan *cleaner.Plan
}

// DeleteDoneMsg carries a finished deletion batch
type DeleteDoneMsg struct {
	Result *cleaner.ExecuteResult
}

// ConfirmedMsg signals the user approved the planned deletion
type ConfirmedMsg struct{}

// BackMsg signals the active view wants to return to its parent
type BackMsg struct{}
