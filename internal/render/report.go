package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zuo-Peng/chatstat/internal/stats"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

var (
	colorPrimary = lipgloss.Color("12")  // bright blue
	colorAccent  = lipgloss.Color("10")  // bright green
	colorMuted   = lipgloss.Color("240") // gray

	styleSection = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleValue = lipgloss.NewStyle().
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBar = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

const (
	maxNameWidth = 24
	barWidth     = 20
)

type ReportOptions struct {
	Title string
}

// Report renders a summary for terminals. Colors are dropped automatically
// when stdout is not a TTY.
func Report(s *stats.Summary, opts ReportOptions) string {
	var sections []string

	title := opts.Title
	if title == "" {
		title = "Chat summary"
	}
	sections = append(sections, styleSection.Render(title))

	totals := []string{
		fmt.Sprintf("Messages  %s", styleValue.Render(humanize.Comma(int64(s.Total)))),
		fmt.Sprintf("Text      %s", styleValue.Render(humanize.Comma(int64(s.Text)))),
		fmt.Sprintf("Media     %s", styleValue.Render(humanize.Comma(int64(s.Media)))),
	}
	if !s.First.IsZero() {
		totals = append(totals, fmt.Sprintf("Span      %s to %s (%s)",
			s.First.Format(time.DateOnly), s.Last.Format(time.DateOnly),
			strings.TrimSuffix(humanize.RelTime(s.First, s.Last, "", ""), " ")))
	}
	sections = append(sections, styleBox.Render(strings.Join(totals, "\n")))

	sections = append(sections, styleSection.Render("Senders"))
	sections = append(sections, senderTable(s.Senders))

	sections = append(sections, styleSection.Render("Words"))
	if s.HasAvgWords {
		sections = append(sections, fmt.Sprintf("  %s words per text message", styleValue.Render(fmt.Sprintf("%.2f", s.AvgWords))))
	} else {
		sections = append(sections, styleMuted.Render("  average unavailable (no text messages)"))
	}

	sections = append(sections, styleSection.Render("Emoji"))
	emoji := fmt.Sprintf("  %s total", styleValue.Render(humanize.Comma(int64(s.Emoji))))
	if len(s.TopEmoji) > 0 {
		var parts []string
		for _, e := range s.TopEmoji {
			parts = append(parts, fmt.Sprintf("%s %d", e.Emoji, e.Count))
		}
		emoji += "  " + strings.Join(parts, "  ")
	}
	sections = append(sections, emoji)

	sections = append(sections, styleSection.Render("Active hours"))
	sections = append(sections, hourBars(s.Hours, s.Untimed))

	if s.CorpusEmpty() {
		sections = append(sections, styleMuted.Render("Corpus is empty: nothing to build a word cloud from"))
	} else {
		sections = append(sections, styleMuted.Render(fmt.Sprintf("Corpus: %s words", humanize.Comma(int64(len(strings.Fields(s.Corpus)))))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func senderTable(senders []stats.SenderStats) string {
	if len(senders) == 0 {
		return styleMuted.Render("  none")
	}

	nameW := 0
	for _, st := range senders {
		nameW = max(nameW, min(runewidth.StringWidth(st.Name), maxNameWidth))
	}

	var lines []string
	for _, st := range senders {
		name := runewidth.FillRight(runewidth.Truncate(st.Name, maxNameWidth, "…"), nameW)
		lines = append(lines, fmt.Sprintf("  %s  %6s  text %5.1f%%  media %5.1f%%",
			name, humanize.Comma(int64(st.Total)), st.TextPercent(), st.MediaPercent()))
	}
	return strings.Join(lines, "\n")
}

func hourBars(hours []stats.HourCount, untimed int) string {
	if len(hours) == 0 {
		return styleMuted.Render("  unavailable")
	}

	peak := hours[0].Count
	var lines []string
	for _, h := range hours {
		n := h.Count * barWidth / peak
		if n == 0 {
			n = 1
		}
		lines = append(lines, fmt.Sprintf("  %02d:00  %s %s",
			h.Hour, styleBar.Render(strings.Repeat("█", n)), humanize.Comma(int64(h.Count))))
	}
	if untimed > 0 {
		lines = append(lines, styleMuted.Render(fmt.Sprintf("  %d messages without a readable time", untimed)))
	}
	return strings.Join(lines, "\n")
}
