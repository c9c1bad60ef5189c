package render

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Zuo-Peng/chatstat/internal/parse"
	"github.com/mattn/go-runewidth"
)

const (
	colorReset   = "\033[0m"
	colorDim     = "\033[2m"
	colorHit     = "\033[43m"   // yellow background
	colorBoldRed = "\033[1;31m" // bold red for keyword highlights
	colorMedia   = "\033[2;35m" // dim magenta for media placeholders
)

// senderColors cycles per distinct sender in order of appearance.
var senderColors = []string{
	"\033[1;34m", // bold blue
	"\033[1;32m", // bold green
	"\033[1;36m", // bold cyan
	"\033[1;33m", // bold yellow
	"\033[1;35m", // bold magenta
}

type Options struct {
	Hit     int    // record index to highlight, -1 for none
	Context int    // messages before/after hit to show
	Width   int    // wrap width (0 = no wrap)
	Query   string // search query for keyword highlighting
	Title   string
}

// highlightKeywords wraps case-insensitive matches of the query's terms in
// bold red.
func highlightKeywords(text, query string) string {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return text
	}
	for i, t := range terms {
		terms[i] = regexp.QuoteMeta(t)
	}
	re := regexp.MustCompile("(?i)" + strings.Join(terms, "|"))
	return re.ReplaceAllString(text, colorBoldRed+"${0}"+colorReset)
}

// indentLines prefixes every line of text.
func indentLines(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// Conversation renders a window of records around opts.Hit and returns the
// content and the 0-based line of the hit header (-1 if no hit).
func Conversation(records []parse.Record, opts Options) (string, int) {
	if opts.Context == 0 {
		opts.Context = 10
	}
	if opts.Context < 0 {
		opts.Context = len(records)
	}
	if len(records) == 0 {
		return "(no messages)", -1
	}

	start, end := 0, len(records)
	if opts.Hit >= 0 && opts.Hit < len(records) {
		start = max(opts.Hit-opts.Context, 0)
		end = min(opts.Hit+opts.Context+1, len(records))
	}

	colors := make(map[string]string)
	for _, r := range records {
		if _, ok := colors[r.Sender]; !ok {
			colors[r.Sender] = senderColors[len(colors)%len(senderColors)]
		}
	}

	var b strings.Builder
	hitLine := -1
	lineCount := 0
	separator := colorDim + "--------------------------------------------------" + colorReset

	// helper to track line count; wraps long lines if Width is set
	writeLine := func(s string) {
		for _, wl := range wrapLine(s, opts.Width) {
			b.WriteString(wl)
			b.WriteString("\n")
			lineCount++
		}
	}

	title := opts.Title
	if title == "" {
		title = "chat"
	}
	writeLine(fmt.Sprintf("%s--- %s (%d messages) ---%s", colorDim, title, len(records), colorReset))

	if start > 0 {
		writeLine(fmt.Sprintf("%s... (%d messages before) ...%s", colorDim, start, colorReset))
	}

	for i := start; i < end; i++ {
		r := records[i]
		isHit := i == opts.Hit

		if i > start {
			writeLine(separator)
		}
		if isHit {
			hitLine = lineCount
			writeLine(fmt.Sprintf("%s>> #%d %s > %s %s <<%s", colorHit, i, r.Sender, r.Date, r.Time, colorReset))
		} else {
			writeLine(fmt.Sprintf("%s#%d %s >%s %s%s %s%s", colors[r.Sender], i, r.Sender, colorReset, colorDim, r.Date, r.Time, colorReset))
		}

		text := highlightKeywords(r.Body, opts.Query)
		if r.Kind == parse.KindMedia {
			media := colorMedia + "<media>" + colorReset
			if text == "" {
				text = media
			} else {
				text = media + " " + text
			}
		}
		for _, tl := range strings.Split(indentLines(text, "  "), "\n") {
			writeLine(tl)
		}
		writeLine("")
	}

	if after := len(records) - end; after > 0 {
		writeLine(fmt.Sprintf("%s... (%d messages after) ...%s", colorDim, after, colorReset))
	}

	return b.String(), hitLine
}
