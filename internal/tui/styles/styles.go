// Package styles defines the lipgloss styles and color themes for the
// segcut TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Segment rows
	SegmentRow = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	SegmentRowActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor).
				Background(SurfaceColor).
				Padding(0, 1)

	SegmentCombine = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	SegmentInspect = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	SegmentSplitting = lipgloss.NewStyle().
				Foreground(WarningColor).
				Italic(true)

	SegmentPlayed = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Marker canvas strip
	Canvas = lipgloss.NewStyle().
		Foreground(MutedColor)

	CanvasTick = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	// Mode badges
	ModeSegments = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	ModePreview = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SecondaryColor).
			Padding(0, 2)

	// Sidebar
	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	CombineButton = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SecondaryColor).
			Padding(0, 1)

	CombineButtonOff = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)

	Tooltip = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	// Footer
	FooterKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	FooterText = lipgloss.NewStyle().
			Foreground(MutedColor)

	StatusError = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)
)
