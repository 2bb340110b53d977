package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cleansweep/cleansweep/internal/cleaner"
	"github.com/cleansweep/cleansweep/internal/ui/styles"
	"github.com/cleansweep/cleansweep/pkg/utils"
)

const confirmListLimit = 15

// ConfirmViewModel shows the gate's decision and asks for final approval.
// A rejected plan cannot be approved, only dismissed.
type ConfirmViewModel struct {
	plan *cleaner.Plan
}

// NewConfirmViewModel creates the confirmation view for a plan
func NewConfirmViewModel(plan *cleaner.Plan) *ConfirmViewModel {
	return &ConfirmViewModel{plan: plan}
}

// Init implements tea.Model
func (m *ConfirmViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ConfirmViewModel) Update(msg tea.Msg) (*ConfirmViewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			if !m.plan.Rejected() {
				return m, func() tea.Msg { return ConfirmedMsg{} }
			}
		case "n", "N", "esc":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}
	return m, nil
}

// View renders the confirmation
func (m *ConfirmViewModel) View() string {
	var b strings.Builder

	if m.plan.Rejected() {
		b.WriteString(styles.ErrorStyle.Render("Deletion blocked"))
		b.WriteString("\n\n")
		b.WriteString("The selection contains paths that must not be deleted:\n\n")
		for _, blocked := range m.plan.Blocked {
			b.WriteString(fmt.Sprintf("  %s %s\n     %s\n",
				styles.TierBadge(blocked.Verdict.Tier),
				styles.PathStyle.Render(blocked.Path),
				styles.DimStyle.Render(blocked.Verdict.Reason)))
		}
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("Remove these from the selection and try again. esc back"))
		return b.String()
	}

	b.WriteString(styles.TitleStyle.Render("Confirm deletion"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("About to permanently delete %s:\n\n",
		utils.FormatCount(len(m.plan.Accepted), "item", "items")))

	shown := m.plan.Accepted
	if len(shown) > confirmListLimit {
		shown = shown[:confirmListLimit]
	}
	for _, path := range shown {
		b.WriteString("  " + styles.PathStyle.Render(path) + "\n")
	}
	if extra := len(m.plan.Accepted) - len(shown); extra > 0 {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  ... and %d more\n", extra)))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("y delete | n / esc cancel"))
	return b.String()
}
