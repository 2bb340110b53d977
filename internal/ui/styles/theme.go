package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cleansweep/cleansweep/internal/safety"
)

// Theme colors
var (
	Primary = lipgloss.Color("#7C3AED")
	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Danger  = lipgloss.Color("#EF4444")
	Info    = lipgloss.Color("#3B82F6")
	Muted   = lipgloss.Color("#6B7280")
	Text    = lipgloss.Color("#F3F4F6")
	TextDim = lipgloss.Color("#9CA3AF")
	BgDark  = lipgloss.Color("#1F2937")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginBottom(1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	CheckboxStyle = lipgloss.NewStyle().
			Foreground(Success)

	CheckboxUncheckedStyle = lipgloss.NewStyle().
				Foreground(Muted)

	PathStyle = lipgloss.NewStyle().
			Foreground(Info)

	SizeStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(BgDark).
			Padding(0, 1)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	tierGreen  = lipgloss.NewStyle().Foreground(Success)
	tierOrange = lipgloss.NewStyle().Foreground(Warning)
	tierRed    = lipgloss.NewStyle().Foreground(Danger).Bold(true)
	tierGrey   = lipgloss.NewStyle().Foreground(Muted)
)

// TierBadge renders a colored badge for a safety tier
func TierBadge(tier safety.Tier) string {
	switch tier {
	case safety.TierGreen:
		return tierGreen.Render("●")
	case safety.TierOrange:
		return tierOrange.Render("●")
	case safety.TierRed:
		return tierRed.Render("●")
	default:
		return tierGrey.Render("○")
	}
}

// TierLabel renders a colored tier name
func TierLabel(tier safety.Tier) string {
	switch tier {
	case safety.TierGreen:
		return tierGreen.Render("green")
	case safety.TierOrange:
		return tierOrange.Render("orange")
	case safety.TierRed:
		return tierRed.Render("red")
	default:
		return tierGrey.Render("grey")
	}
}

// Helper functions
func CheckedBox() string {
	return CheckboxStyle.Render("☑")
}

func UncheckedBox() string {
	return CheckboxUncheckedStyle.Render("☐")
}
