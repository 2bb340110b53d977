package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cleansweep/cleansweep/internal/cleaner"
	"github.com/cleansweep/cleansweep/internal/ui/styles"
	"github.com/cleansweep/cleansweep/pkg/utils"
)

// SummaryViewModel shows the outcome of a deletion batch
type SummaryViewModel struct {
	result *cleaner.ExecuteResult
}

// NewSummaryViewModel creates the summary view
func NewSummaryViewModel(result *cleaner.ExecuteResult) *SummaryViewModel {
	return &SummaryViewModel{result: result}
}

// Init implements tea.Model
func (m *SummaryViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SummaryViewModel) Update(msg tea.Msg) (*SummaryViewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}
	return m, nil
}

// View renders the summary
func (m *SummaryViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Cleanup complete"))
	b.WriteString("\n\n")
	b.WriteString(styles.SuccessStyle.Render(fmt.Sprintf("Deleted %s, freed %s\n",
		utils.FormatCount(m.result.DeletedCount(), "item", "items"),
		utils.FormatBytes(int64(m.result.FreedSize)))))

	if m.result.ErrorCount() > 0 {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("%d failed:\n", m.result.ErrorCount())))
		for _, err := range m.result.Errors {
			b.WriteString("  " + err.UserMessage() + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter continue | q quit"))
	return b.String()
}
