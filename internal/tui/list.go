package tui

import (
	"strings"

	"github.com/Zuo-Peng/chatstat/internal/parse"
	"github.com/Zuo-Peng/chatstat/internal/search"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each result occupies.
const linesPerItem = 2

var snippetCleaner = strings.NewReplacer("\n", " ", "\t", " ", ">>>", "", "<<<", "")

// renderList renders the visible slice of results for the left panel.
func (m model) renderList(width, height int) string {
	if len(m.results) == 0 {
		return styleEmpty.Width(width).Height(height).Render("No messages")
	}

	lines := make([]string, 0, height)
	for i := m.listOffset; i < len(m.results) && len(lines)+linesPerItem <= height; i++ {
		lines = append(lines, formatResultLine(m.results[i], width, i == m.cursor)...)
	}
	blank := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// formatResultLine renders one result as a stamp line and a snippet line:
//
//	> 12/03/2024 09:15  Alice
//	    good morning...
func formatResultLine(r search.Result, width int, selected bool) []string {
	marker := "  "
	if selected {
		marker = styleListSelected.Render("> ")
	}
	stamp := r.Date + " " + r.Time + "  "
	sender := runewidth.Truncate(r.Sender, max(width-2-len(stamp), 0), "")
	head := marker + stamp + styleSender.Render(sender)

	const indent = "    "
	if r.Kind == string(parse.KindMedia) && r.Snippet == "" {
		return []string{head, indent + styleMedia.Render("<media>")}
	}
	snippet := runewidth.Truncate(snippetCleaner.Replace(r.Snippet), max(width-len(indent), 0), "")
	return []string{head, indent + styleSnippet.Render(snippet)}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visible := max(listHeight/linesPerItem, 1)
	switch {
	case m.cursor < m.listOffset:
		m.listOffset = m.cursor
	case m.cursor >= m.listOffset+visible:
		m.listOffset = m.cursor - visible + 1
	}
}
