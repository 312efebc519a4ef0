package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/user/wispmon/internal/model"
	"github.com/user/wispmon/internal/view"
)

var (
	// Colors
	Primary   = lipgloss.Color("39")
	Secondary = lipgloss.Color("86")
	Subtle    = lipgloss.Color("241")
	Success   = lipgloss.Color("46")
	Warning   = lipgloss.Color("214")
	Error     = lipgloss.Color("196")

	// Header styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(Primary).
			Padding(0, 2).
			Align(lipgloss.Center)

	// Section styles
	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 2).
			MarginBottom(1)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary)

	// Label and value styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(Subtle)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Status styles
	OnlineStyle = lipgloss.NewStyle().
			Foreground(Success)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	OfflineStyle = lipgloss.NewStyle().
			Foreground(Error)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(Success)

	// Dim style
	DimStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			MarginTop(1)

	// Loading style
	LoadingStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Padding(2, 4)

	// Table styles
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15"))

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Bold(true)

	// Pagination styles
	PageActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(Primary).
			Padding(0, 1).
			Bold(true)

	PageLinkStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Padding(0, 1)

	PageDimStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			Padding(0, 1)
)

// StatusStyle returns the style for a router status badge.
func StatusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusOnline:
		return OnlineStyle
	case model.StatusWarning:
		return WarningStyle
	}
	return OfflineStyle
}

// SeverityStyle returns the bar color for a bandwidth usage bucket.
func SeverityStyle(s view.Severity) lipgloss.Style {
	switch s {
	case view.SeverityHigh:
		return OfflineStyle
	case view.SeverityMedium:
		return WarningStyle
	}
	return OnlineStyle
}

// RenderBar renders a fixed-width usage bar colored by severity.
func RenderBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}

	return SeverityStyle(view.UsageSeverity(percent)).Render(bar)
}

// RenderSignalBars renders a 0-4 bar signal indicator.
func RenderSignalBars(bars int) string {
	glyphs := [4]string{"▂", "▄", "▆", "█"}
	out := ""
	for i := 0; i < 4; i++ {
		if i < bars {
			out += OnlineStyle.Render(glyphs[i])
		} else {
			out += DimStyle.Render(glyphs[i])
		}
	}
	return out
}
