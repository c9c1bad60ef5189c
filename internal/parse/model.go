package parse

import (
	"fmt"
	"time"
)

// Kind tells a message with text from an omitted attachment.
type Kind string

const (
	KindText  Kind = "text"
	KindMedia Kind = "media"
)

// Record is one logical chat entry. Date and Time hold the header tokens
// exactly as exported; Timestamp is the normalized form (zero if the date
// could not be normalized).
type Record struct {
	Date      string
	Time      string
	Sender    string
	Body      string
	Kind      Kind
	Timestamp time.Time
	Line      int // 1-based line of the header in the export
}

// Day returns the record's calendar date as YYYY-MM-DD, or "" when the
// date was not normalized.
func (r Record) Day() string {
	if r.Timestamp.IsZero() {
		return ""
	}
	return r.Timestamp.Format(time.DateOnly)
}

// Stats counts how each physical line was classified.
type Stats struct {
	Lines         int
	Headers       int
	Continuations int
	Notices       int
	Events        int // stamped lines without a sender, dropped
	Blank         int
	Orphans       int // non-header lines seen before any record was opened
	Media         int
}

func (s Stats) String() string {
	return fmt.Sprintf("lines=%d headers=%d continuations=%d notices=%d events=%d blank=%d orphans=%d media=%d",
		s.Lines, s.Headers, s.Continuations, s.Notices, s.Events, s.Blank, s.Orphans, s.Media)
}

// Result is a parsed export.
type Result struct {
	Path    string
	Size    int64
	Records []Record
	Stats   Stats
}

// ParseError reports that the export itself could not be read. Content that
// merely fails to match is never an error.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read chat log: %v", e.Err)
	}
	return fmt.Sprintf("read chat log %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
