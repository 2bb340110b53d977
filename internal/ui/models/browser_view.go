package models

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cleansweep/cleansweep/internal/safety"
	"github.com/cleansweep/cleansweep/internal/scanner"
	"github.com/cleansweep/cleansweep/internal/ui/styles"
	"github.com/cleansweep/cleansweep/pkg/utils"
)

// BrowserViewModel navigates the filesystem one scanned directory at a
// time, showing subtree sizes and safety tiers.
type BrowserViewModel struct {
	services *Services

	dir      string
	result   *scanner.Result
	verdicts map[string]safety.Verdict
	selected map[int]bool
	cursor   int
	offset   int
	pageSize int

	scanning bool
	scanErr  error
	cancel   context.CancelFunc
	spinner  spinner.Model
}

// NewBrowserViewModel creates a browser rooted at dir
func NewBrowserViewModel(services *Services, dir string) *BrowserViewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return &BrowserViewModel{
		services: services,
		dir:      dir,
		verdicts: make(map[string]safety.Verdict),
		selected: make(map[int]bool),
		pageSize: 20,
		spinner:  s,
	}
}

// Init starts the initial scan
func (m *BrowserViewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startScan(m.dir))
}

func (m *BrowserViewModel) startScan(dir string) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.scanning = true
	m.scanErr = nil
	m.dir = dir
	m.cursor = 0
	m.offset = 0
	m.selected = make(map[int]bool)

	engine := m.services.Engine
	return func() tea.Msg {
		result, err := engine.Scan(ctx, dir)
		if err != nil {
			return ScanFailedMsg{Dir: dir, Err: err}
		}
		return ScanDoneMsg{Result: result}
	}
}

// Update handles messages
func (m *BrowserViewModel) Update(msg tea.Msg) (*BrowserViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ScanDoneMsg:
		m.scanning = false
		m.result = msg.Result
		return m, nil

	case ScanFailedMsg:
		m.scanning = false
		m.scanErr = msg.Err
		return m, nil

	case VerdictMsg:
		m.verdicts[msg.Path] = msg.Verdict
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *BrowserViewModel) handleKey(msg tea.KeyMsg) (*BrowserViewModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset--
			}
		}
	case "down", "j":
		if m.result != nil && m.cursor < len(m.result.Entries)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.pageSize {
				m.offset++
			}
		}
	case " ", "space":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "enter":
		if e := m.entryAt(m.cursor); e != nil && e.IsDir {
			return m, m.startScan(e.Path)
		}
	case "backspace", "h", "left":
		parent := filepath.Dir(m.dir)
		if parent != m.dir {
			return m, m.startScan(parent)
		}
	case "r":
		m.services.Engine.Invalidate(m.dir)
		return m, m.startScan(m.dir)
	case "a":
		if e := m.entryAt(m.cursor); e != nil {
			return m, m.assistClassify(e.Path)
		}
	case "d":
		if paths := m.selectedPaths(); len(paths) > 0 {
			return m, plan(m.services, paths)
		}
	}
	return m, nil
}

// assistClassify resolves the cursor entry's tier with AI assist (or the
// heuristic fallback) off the UI loop.
func (m *BrowserViewModel) assistClassify(path string) tea.Cmd {
	classifier := m.services.Classifier
	enabled := m.services.Settings.AIEnabled() && m.services.Settings.HasCredential()
	return func() tea.Msg {
		v := classifier.ClassifyWithAssist(context.Background(), path, enabled)
		return VerdictMsg{Path: path, Verdict: v}
	}
}

func (m *BrowserViewModel) entryAt(i int) *scanner.Entry {
	if m.result == nil || i < 0 || i >= len(m.result.Entries) {
		return nil
	}
	return &m.result.Entries[i]
}

func (m *BrowserViewModel) selectedPaths() []string {
	var paths []string
	for idx, on := range m.selected {
		if on {
			if e := m.entryAt(idx); e != nil {
				paths = append(paths, e.Path)
			}
		}
	}
	return paths
}

// verdictFor returns the display verdict: an on-demand AI result if one
// arrived, else the synchronous cache/rule classification.
func (m *BrowserViewModel) verdictFor(path string) safety.Verdict {
	if v, ok := m.verdicts[path]; ok {
		return v
	}
	return m.services.Classifier.Classify(path)
}

// View renders the browser
func (m *BrowserViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Browse: " + m.dir))
	b.WriteString("\n\n")

	if m.scanning {
		b.WriteString(m.spinner.View() + styles.DimStyle.Render(" Scanning..."))
		return b.String()
	}
	if m.scanErr != nil {
		b.WriteString(styles.ErrorStyle.Render(m.scanErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("backspace parent | q quit"))
		return b.String()
	}
	if m.result == nil {
		return b.String()
	}

	end := m.offset + m.pageSize
	if end > len(m.result.Entries) {
		end = len(m.result.Entries)
	}

	for i := m.offset; i < end; i++ {
		entry := m.result.Entries[i]

		cursor := "  "
		if i == m.cursor {
			cursor = styles.SelectedStyle.Render("→ ")
		}

		checkbox := styles.UncheckedBox()
		if m.selected[i] {
			checkbox = styles.CheckedBox()
		}

		name := entry.Name
		if entry.IsDir {
			name += "/"
		}
		if len(name) > 48 {
			name = "..." + name[len(name)-45:]
		}

		verdict := m.verdictFor(entry.Path)
		b.WriteString(fmt.Sprintf("%s%s %s %-50s %s\n",
			cursor,
			checkbox,
			styles.TierBadge(verdict.Tier),
			styles.PathStyle.Render(name),
			styles.SizeStyle.Render(utils.FormatBytes(int64(entry.SizeBytes))),
		))
	}

	var count int
	var size uint64
	for idx, on := range m.selected {
		if on {
			if e := m.entryAt(idx); e != nil {
				count++
				size += e.SizeBytes
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.StatusBarStyle.Render(fmt.Sprintf("%s total | selected %s, %s",
		utils.FormatBytes(int64(m.result.TotalSize)),
		utils.FormatCount(count, "item", "items"),
		utils.FormatBytes(int64(size)))))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("↑/↓ move | enter open | backspace up | space select | a assess | d delete | r rescan | q quit"))

	return b.String()
}

// plan runs the deletion gate off the UI loop
func plan(services *Services, paths []string) tea.Cmd {
	gate := services.Gate
	return func() tea.Msg {
		return PlanMsg{Plan: gate.PlanDeletion(paths)}
	}
}
