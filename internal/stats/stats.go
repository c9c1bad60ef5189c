package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/Zuo-Peng/chatstat/internal/parse"
)

const (
	DefaultTopHours = 5
	DefaultTopEmoji = 10
)

type Options struct {
	IsEmoji  Classifier
	TopHours int
	TopEmoji int
}

func DefaultOptions() Options {
	return Options{
		IsEmoji:  IsEmoji,
		TopHours: DefaultTopHours,
		TopEmoji: DefaultTopEmoji,
	}
}

type SenderStats struct {
	Name  string
	Total int
	Media int
	Text  int
}

func (s SenderStats) MediaPercent() float64 { return percent(s.Media, s.Total) }
func (s SenderStats) TextPercent() float64  { return percent(s.Text, s.Total) }

type HourCount struct {
	Hour  int
	Count int
}

type EmojiCount struct {
	Emoji string
	Count int
}

// Summary is the aggregate view of one chat log. Every field has a defined
// value for any input, including an empty one.
type Summary struct {
	Total int
	Media int
	Text  int

	// Senders is ordered by Total descending, ties in first-seen order.
	Senders []SenderStats

	// AvgWords is only meaningful when HasAvgWords is set (at least one
	// text message).
	AvgWords    float64
	HasAvgWords bool

	Emoji    int
	TopEmoji []EmojiCount

	// Hours holds the busiest hours, volume descending then hour ascending.
	Hours   []HourCount
	Untimed int // records whose time could not be parsed

	First time.Time
	Last  time.Time

	Corpus string
}

func (s *Summary) CorpusEmpty() bool {
	return strings.TrimSpace(s.Corpus) == ""
}

func Summarize(records []parse.Record, opts Options) *Summary {
	if opts.IsEmoji == nil {
		opts.IsEmoji = IsEmoji
	}
	if opts.TopHours <= 0 {
		opts.TopHours = DefaultTopHours
	}
	if opts.TopEmoji <= 0 {
		opts.TopEmoji = DefaultTopEmoji
	}

	s := &Summary{Total: len(records)}

	senderIdx := make(map[string]int)
	var hours [24]int
	emojiCounts := make(map[rune]int)
	var corpus []string
	totalWords := 0

	for _, r := range records {
		i, ok := senderIdx[r.Sender]
		if !ok {
			i = len(s.Senders)
			senderIdx[r.Sender] = i
			s.Senders = append(s.Senders, SenderStats{Name: r.Sender})
		}
		s.Senders[i].Total++

		if h, ok := parse.Hour(r.Time); ok {
			hours[h]++
		} else {
			s.Untimed++
		}

		if !r.Timestamp.IsZero() {
			if s.First.IsZero() || r.Timestamp.Before(s.First) {
				s.First = r.Timestamp
			}
			if r.Timestamp.After(s.Last) {
				s.Last = r.Timestamp
			}
		}

		if r.Kind == parse.KindMedia {
			s.Media++
			s.Senders[i].Media++
			continue
		}

		s.Text++
		s.Senders[i].Text++
		totalWords += len(strings.Fields(r.Body))
		for _, c := range r.Body {
			if opts.IsEmoji(c) {
				s.Emoji++
				emojiCounts[c]++
			}
		}
		if r.Body != "" {
			corpus = append(corpus, r.Body)
		}
	}

	sort.SliceStable(s.Senders, func(a, b int) bool {
		return s.Senders[a].Total > s.Senders[b].Total
	})

	if s.Text > 0 {
		s.AvgWords = float64(totalWords) / float64(s.Text)
		s.HasAvgWords = true
	}

	s.Hours = topHours(hours, opts.TopHours)
	s.TopEmoji = topEmoji(emojiCounts, opts.TopEmoji)
	s.Corpus = strings.Join(corpus, " ")
	return s
}

// Analyze summarizes records and returns the plain report and the corpus.
func Analyze(records []parse.Record) (report, corpus string) {
	s := Summarize(records, DefaultOptions())
	return s.Report(), s.Corpus
}

func topHours(hours [24]int, n int) []HourCount {
	var out []HourCount
	for h, c := range hours {
		if c > 0 {
			out = append(out, HourCount{Hour: h, Count: c})
		}
	}
	// hours are appended in ascending order, so a stable sort keeps ties by hour
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Count > out[b].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topEmoji(counts map[rune]int, n int) []EmojiCount {
	runes := make([]rune, 0, len(counts))
	for r := range counts {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(a, b int) bool {
		if counts[runes[a]] != counts[runes[b]] {
			return counts[runes[a]] > counts[runes[b]]
		}
		return runes[a] < runes[b]
	})
	if len(runes) > n {
		runes = runes[:n]
	}

	out := make([]EmojiCount, 0, len(runes))
	for _, r := range runes {
		out = append(out, EmojiCount{Emoji: string(r), Count: counts[r]})
	}
	return out
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}
