package stats

import (
	"fmt"
	"strings"
	"time"
)

const unavailable = "unavailable"

// Report renders the summary as plain text with the sections Totals,
// Senders, Words, Emoji and Active hours, followed by the corpus status.
func (s *Summary) Report() string {
	var b strings.Builder

	b.WriteString("Totals\n")
	fmt.Fprintf(&b, "  Messages: %d\n", s.Total)
	fmt.Fprintf(&b, "  Text:     %d\n", s.Text)
	fmt.Fprintf(&b, "  Media:    %d\n", s.Media)
	if !s.First.IsZero() {
		fmt.Fprintf(&b, "  Span:     %s to %s\n", s.First.Format(time.DateOnly), s.Last.Format(time.DateOnly))
	}

	b.WriteString("\nSenders\n")
	if len(s.Senders) == 0 {
		b.WriteString("  none\n")
	}
	for _, st := range s.Senders {
		fmt.Fprintf(&b, "  %s: %d messages, text %d (%.1f%%), media %d (%.1f%%)\n",
			st.Name, st.Total, st.Text, st.TextPercent(), st.Media, st.MediaPercent())
	}

	b.WriteString("\nWords\n")
	if s.HasAvgWords {
		fmt.Fprintf(&b, "  Average words per text message: %.2f\n", s.AvgWords)
	} else {
		fmt.Fprintf(&b, "  Average words per text message: %s\n", unavailable)
	}

	b.WriteString("\nEmoji\n")
	fmt.Fprintf(&b, "  Total: %d\n", s.Emoji)
	if len(s.TopEmoji) > 0 {
		parts := make([]string, 0, len(s.TopEmoji))
		for _, e := range s.TopEmoji {
			parts = append(parts, fmt.Sprintf("%s x%d", e.Emoji, e.Count))
		}
		fmt.Fprintf(&b, "  Top:   %s\n", strings.Join(parts, "  "))
	}

	b.WriteString("\nActive hours\n")
	if len(s.Hours) == 0 {
		fmt.Fprintf(&b, "  %s\n", unavailable)
	}
	for _, h := range s.Hours {
		fmt.Fprintf(&b, "  %02d:00  %d messages\n", h.Hour, h.Count)
	}
	if s.Untimed > 0 {
		fmt.Fprintf(&b, "  (%d messages without a readable time)\n", s.Untimed)
	}

	b.WriteString("\n")
	if s.CorpusEmpty() {
		b.WriteString("Corpus: empty\n")
	} else {
		fmt.Fprintf(&b, "Corpus: %d words\n", len(strings.Fields(s.Corpus)))
	}
	return b.String()
}
