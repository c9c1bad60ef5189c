package tui

import (
	"github.com/Zuo-Peng/chatstat/internal/parse"
	"github.com/Zuo-Peng/chatstat/internal/render"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// previewContext is how many messages around the selection the preview shows.
const previewContext = 50

// previewRenderedMsg is sent when an async preview render completes.
type previewRenderedMsg struct {
	seq     int
	content string
	hitLine int
}

// loadPreviewCmd returns a tea.Cmd that renders the conversation preview async.
func loadPreviewCmd(records []parse.Record, title string, seq int, query string, width int) tea.Cmd {
	return func() tea.Msg {
		content, hitLine := render.Conversation(records, render.Options{
			Hit:     seq,
			Context: previewContext,
			Width:   width,
			Query:   query,
			Title:   title,
		})
		return previewRenderedMsg{
			seq:     seq,
			content: content,
			hitLine: hitLine,
		}
	}
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
