package search

import (
	"fmt"
	"time"

	"github.com/Zuo-Peng/chatstat/internal/parse"
)

const dayLayout = time.DateOnly

// Range is an inclusive calendar-date window. A zero bound is open.
type Range struct {
	Start time.Time
	End   time.Time
}

// ParseRange parses YYYY-MM-DD bounds; empty strings leave a side open.
func ParseRange(since, until string) (Range, error) {
	var r Range
	var err error
	if since != "" {
		if r.Start, err = time.Parse(dayLayout, since); err != nil {
			return Range{}, fmt.Errorf("invalid --since %q (want YYYY-MM-DD)", since)
		}
	}
	if until != "" {
		if r.End, err = time.Parse(dayLayout, until); err != nil {
			return Range{}, fmt.Errorf("invalid --until %q (want YYYY-MM-DD)", until)
		}
	}
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return Range{}, fmt.Errorf("--until %s is before --since %s", until, since)
	}
	return r, nil
}

func (r Range) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains compares calendar days only. Records without a normalized date
// fall outside any non-empty range.
func (r Range) Contains(rec parse.Record) bool {
	if r.IsZero() {
		return true
	}
	day := rec.Day()
	if day == "" {
		return false
	}
	if !r.Start.IsZero() && day < r.Start.Format(dayLayout) {
		return false
	}
	if !r.End.IsZero() && day > r.End.Format(dayLayout) {
		return false
	}
	return true
}

// Filter restricts records by sender, kind and date range, keeping file
// order. Query and Limit are ignored.
func Filter(records []parse.Record, opts Options) []parse.Record {
	out := make([]parse.Record, 0, len(records))
	for _, r := range records {
		if opts.Sender != "" && r.Sender != opts.Sender {
			continue
		}
		if opts.Kind != "" && string(r.Kind) != opts.Kind {
			continue
		}
		if !opts.Range.Contains(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
