// Package styles provides the lipgloss palette and composed styles used by
// the devfile CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Base palette.
var (
	Green  = lipgloss.Color("#00cc6a")
	Cyan   = lipgloss.Color("#00a0cc")
	Red    = lipgloss.Color("#ff4444")
	Yellow = lipgloss.Color("#fbbf24")

	Neutral200 = lipgloss.Color("#e5e5e5")
	Neutral500 = lipgloss.Color("#737373")
	Neutral700 = lipgloss.Color("#404040")
	Black      = lipgloss.Color("#000000")
)

// Semantic colors
var (
	ColorPrimary   = Green
	ColorSecondary = Cyan
	ColorSuccess   = Green
	ColorWarning   = Yellow
	ColorError     = Red
	ColorInfo      = Cyan

	ColorText      = Neutral200
	ColorTextMuted = Neutral500
	ColorBorder    = Neutral700
	ColorBg        = Black
)
