// Package models holds the bubbletea models for the interactive TUI. The
// views call core operations through injected services and render typed
// result messages; no domain logic lives here.
package models

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the app
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewQuickClean
	ViewConfirm
	ViewDeleting
	ViewSummary
)

// AppModel is the root model for the interactive TUI
type AppModel struct {
	state         ViewState
	previousState ViewState

	services *Services

	browserView    *BrowserViewModel
	quickCleanView *QuickCleanViewModel
	confirmView    *ConfirmViewModel
	summaryView    *SummaryViewModel

	width  int
	height int
}

// NewAppModel creates the root model starting in the directory browser
func NewAppModel(services *Services, startDir string) *AppModel {
	return &AppModel{
		state:       ViewBrowser,
		services:    services,
		browserView: NewBrowserViewModel(services, startDir),
	}
}

// Init initializes the model
func (m *AppModel) Init() tea.Cmd {
	return m.browserView.Init()
}

// Update handles messages
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != ViewDeleting {
				return m, tea.Quit
			}
		case "tab":
			// Toggle between the two main surfaces.
			switch m.state {
			case ViewBrowser:
				m.state = ViewQuickClean
				if m.quickCleanView == nil {
					m.quickCleanView = NewQuickCleanViewModel(m.services)
					return m, m.quickCleanView.Init()
				}
				return m, nil
			case ViewQuickClean:
				m.state = ViewBrowser
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case PlanMsg:
		m.previousState = m.state
		m.confirmView = NewConfirmViewModel(msg.Plan)
		m.state = ViewConfirm
		return m, nil

	case ConfirmedMsg:
		m.state = ViewDeleting
		executor := m.services.Executor
		paths := m.confirmView.plan.Accepted
		return m, func() tea.Msg {
			return DeleteDoneMsg{Result: executor.Execute(paths)}
		}

	case DeleteDoneMsg:
		m.summaryView = NewSummaryViewModel(msg.Result)
		m.state = ViewSummary
		return m, nil

	case BackMsg:
		m.state = m.previousState
		// Deleted entries are gone from the scan cache; refresh whichever
		// surface we return to.
		switch m.state {
		case ViewBrowser:
			return m, m.browserView.startScan(m.browserView.dir)
		case ViewQuickClean:
			return m, m.quickCleanView.startAnalysis()
		}
		return m, nil
	}

	return m.delegateUpdate(msg)
}

func (m *AppModel) delegateUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case ViewBrowser:
		m.browserView, cmd = m.browserView.Update(msg)
	case ViewQuickClean:
		m.quickCleanView, cmd = m.quickCleanView.Update(msg)
	case ViewConfirm:
		m.confirmView, cmd = m.confirmView.Update(msg)
	case ViewSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	}
	return m, cmd
}

// View renders the current view
func (m *AppModel) View() string {
	switch m.state {
	case ViewBrowser:
		return m.browserView.View()
	case ViewQuickClean:
		return m.quickCleanView.View()
	case ViewConfirm:
		return m.confirmView.View()
	case ViewDeleting:
		return "Deleting..."
	case ViewSummary:
		return m.summaryView.View()
	}
	return ""
}
