// Package tui provides an interactive terminal editor for the themebundle
// configuration file.
package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#58A6FF"}
	subtleColor  = lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"}
	goodColor    = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"}
	badColor     = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}
	changedColor = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#D29922"}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	pathStyle   = lipgloss.NewStyle().Foreground(subtleColor)

	// summary panel of the effective manifest
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(subtleColor).
			PaddingLeft(1)
	labelStyle = lipgloss.NewStyle().Foreground(subtleColor).Width(13)

	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	itemStyle    = lipgloss.NewStyle()
	hintStyle    = lipgloss.NewStyle().Foreground(subtleColor)
	changedStyle = lipgloss.NewStyle().Foreground(changedColor)
	okStyle      = lipgloss.NewStyle().Foreground(goodColor)
	errStyle     = lipgloss.NewStyle().Foreground(badColor)

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(changedColor).
			Padding(1, 2)
)

// formTheme returns the huh theme; the accessible one renders plain prompts
func formTheme(accessible bool) *huh.Theme {
	if accessible {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}
