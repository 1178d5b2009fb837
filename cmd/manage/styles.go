// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette for dark terminal backgrounds.
const (
	// ColorPrimary is purple - used for the title.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red - used for fatal startup errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorHighlight is blue - used for command examples.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for the program title in the long help.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for section headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle is for fatal startup errors.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// CmdStyle is for command names in examples.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
