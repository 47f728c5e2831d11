package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

var passwordStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorText).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorLavender).
	Padding(0, 1)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
	labelStyle       = lipgloss.NewStyle().Foreground(colorOverlay1)
	placeholderStyle = passwordStyle.Foreground(colorSurface1)
	checkedStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	uncheckedStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	noticeStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	noticeErrStyle   = lipgloss.NewStyle().Foreground(colorRed)
	helpStyle        = lipgloss.NewStyle().Foreground(colorSurface1)
)

func tierColor(tier string) lipgloss.Color {
	switch tier {
	case "strong":
		return colorGreen
	case "medium":
		return colorYellow
	}
	return colorRed
}
