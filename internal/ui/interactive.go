// Package ui provides the interactive terminal interface
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cleansweep/cleansweep/internal/ui/models"
)

// RunInteractive starts the interactive TUI rooted at startDir
func RunInteractive(services *models.Services, startDir string) error {
	m := models.NewAppModel(services, startDir)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running interactive mode: %w", err)
	}
	return nil
}
