package parse

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

var errIsDir = errors.New("is a directory")

// DefaultMediaPlaceholders mark an omitted attachment wherever they appear
// in the header remainder.
var DefaultMediaPlaceholders = []string{
	"<Media omitted>",
	"<media omitted>",
}

// DefaultMediaMarkers mark an omitted attachment only when they are the
// whole header remainder, so "the video omitted the best part" stays text.
var DefaultMediaMarkers = []string{
	"image omitted",
	"video omitted",
	"audio omitted",
	"sticker omitted",
	"GIF omitted",
	"document omitted",
}

var DefaultSystemNotices = []string{
	"Messages and calls are end-to-end encrypted",
	"Messages to this group are now secured with end-to-end encryption",
	"Messages to this chat and calls are now secured with end-to-end encryption",
}

// Options tune classification. The zero value recognizes no media and no
// notices; use DefaultOptions.
type Options struct {
	MediaPlaceholders []string
	MediaMarkers      []string
	SystemNotices     []string
	DateOrder         DateOrder
}

func DefaultOptions() Options {
	return Options{
		MediaPlaceholders: DefaultMediaPlaceholders,
		MediaMarkers:      DefaultMediaMarkers,
		SystemNotices:     DefaultSystemNotices,
		DateOrder:         DayMonthYear,
	}
}

// isMedia reports whether a header remainder is an attachment placeholder.
func (o Options) isMedia(body string) bool {
	if containsAny(body, o.MediaPlaceholders) {
		return true
	}
	trimmed := strings.Trim(body, " \u200e")
	for _, m := range o.MediaMarkers {
		if trimmed == m {
			return true
		}
	}
	return false
}

// openRecord accumulates the record whose header was seen last.
type openRecord struct {
	rec   Record
	parts []string
}

func (o *openRecord) close() Record {
	r := o.rec
	r.Body = strings.Join(o.parts, " ")
	return r
}

// ParseLines folds physical lines into records in file order. It never
// fails: lines that match nothing are dropped and counted in Stats.
func ParseLines(lines []string, opts Options) ([]Record, Stats) {
	var (
		records []Record
		stats   Stats
		current *openRecord
	)

	for i, raw := range lines {
		stats.Lines++
		line := cleanLine(raw)

		if line == "" {
			stats.Blank++
			continue
		}
		if containsAny(line, opts.SystemNotices) {
			stats.Notices++
			continue
		}

		if h, ok := matchHeader(line); ok {
			if current != nil {
				records = append(records, current.close())
			}
			stats.Headers++

			current = &openRecord{rec: Record{
				Date:      h.date,
				Time:      h.time,
				Sender:    h.sender,
				Kind:      KindText,
				Timestamp: timestamp(h.date, h.time, opts.DateOrder),
				Line:      i + 1,
			}}
			if opts.isMedia(h.body) {
				current.rec.Kind = KindMedia
				stats.Media++
			} else if h.body != "" {
				current.parts = append(current.parts, h.body)
			}
			continue
		}

		if isEvent(line) {
			stats.Events++
			continue
		}
		if current == nil {
			stats.Orphans++
			continue
		}
		// continuation, also for media records
		current.parts = append(current.parts, line)
		stats.Continuations++
	}

	if current != nil {
		records = append(records, current.close())
	}
	return records, stats
}

// Parse reads r in full and parses it. The only error is a read failure.
func Parse(r io.Reader, opts Options) (*Result, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	records, stats := ParseLines(lines, opts)
	return &Result{Records: records, Stats: stats}, nil
}

// ParseFile reads and parses the export at path, recording its size.
func ParseFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &ParseError{Path: path, Err: errIsDir}
	}

	lines, err := readLines(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	records, stats := ParseLines(lines, opts)
	return &Result{Path: path, Size: info.Size(), Records: records, Stats: stats}, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func cleanLine(s string) string {
	// iOS exports prefix lines with U+200E and files may start with a BOM
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff' || r == '\u200e'
	})
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
