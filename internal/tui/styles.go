package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared with the report renderer: blue for people, green for media.
var (
	colorPrimary   = lipgloss.Color("12")
	colorSecondary = lipgloss.Color("10")
	colorDim       = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("11")
	colorBorder    = lipgloss.Color("238")
)

var (
	styleInputPrompt = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleInput       = styleInputPrompt

	styleListSelected = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true)
	styleSender       = lipgloss.NewStyle().Foreground(colorPrimary)
	styleMedia        = lipgloss.NewStyle().Foreground(colorSecondary).Italic(true)
	styleSnippet      = lipgloss.NewStyle().Foreground(colorDim)
	styleEmpty        = styleSnippet.Align(lipgloss.Center, lipgloss.Center)

	stylePanelBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder)
	styleActiveBorder = stylePanelBorder.BorderForeground(colorPrimary)

	styleStatusBar = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	styleTitle     = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).PaddingLeft(1)
)
