package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cleansweep/cleansweep/internal/quickclean"
	"github.com/cleansweep/cleansweep/internal/ui/styles"
	"github.com/cleansweep/cleansweep/pkg/utils"
)

// QuickCleanViewModel shows per-category reclaimable space and lets the
// user delete whole categories at once.
type QuickCleanViewModel struct {
	services *Services

	results   []quickclean.CategoryResult
	selected  map[int]bool
	cursor    int
	analyzing bool
	spinner   spinner.Model
}

// NewQuickCleanViewModel creates the quick-clean view
func NewQuickCleanViewModel(services *Services) *QuickCleanViewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return &QuickCleanViewModel{
		services: services,
		selected: make(map[int]bool),
		spinner:  s,
	}
}

// Init starts the first analysis
func (m *QuickCleanViewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startAnalysis())
}

func (m *QuickCleanViewModel) startAnalysis() tea.Cmd {
	m.analyzing = true
	m.selected = make(map[int]bool)
	m.cursor = 0

	analyzer := m.services.Analyzer
	return func() tea.Msg {
		return AnalyzeDoneMsg{Results: analyzer.Analyze(context.Background(), nil)}
	}
}

// Update handles messages
func (m *QuickCleanViewModel) Update(msg tea.Msg) (*QuickCleanViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case AnalyzeDoneMsg:
		m.analyzing = false
		m.results = msg.Results
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case " ", "space":
			m.selected[m.cursor] = !m.selected[m.cursor]
		case "r":
			return m, m.startAnalysis()
		case "d":
			if paths := m.selectedPaths(); len(paths) > 0 {
				return m, plan(m.services, paths)
			}
		}
	}
	return m, nil
}

func (m *QuickCleanViewModel) selectedPaths() []string {
	var paths []string
	for idx, on := range m.selected {
		if !on || idx >= len(m.results) {
			continue
		}
		for _, item := range m.results[idx].Items {
			paths = append(paths, item.Path)
		}
	}
	return paths
}

// View renders the quick-clean view
func (m *QuickCleanViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Quick Clean"))
	b.WriteString("\n\n")

	if m.analyzing {
		b.WriteString(m.spinner.View() + styles.DimStyle.Render(" Analyzing categories..."))
		return b.String()
	}

	var grand uint64
	for i, cat := range m.results {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.SelectedStyle.Render("→ ")
		}

		checkbox := styles.UncheckedBox()
		if m.selected[i] {
			checkbox = styles.CheckedBox()
		}

		b.WriteString(fmt.Sprintf("%s%s %-24s %10s  %s\n",
			cursor,
			checkbox,
			cat.Label,
			styles.SizeStyle.Render(utils.FormatBytes(int64(cat.TotalSize))),
			styles.DimStyle.Render(utils.FormatCount(len(cat.Items), "item", "items")),
		))
		grand += cat.TotalSize
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusBarStyle.Render("Reclaimable: " + utils.FormatBytes(int64(grand))))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ move | space select | d delete selected | r re-analyze | tab browser | q quit"))

	return b.String()
}
