package main

import (
	"fmt"
	"io"
	"time"

	"github.com/Zuo-Peng/chatstat/internal/index"
	"github.com/Zuo-Peng/chatstat/internal/stats"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor <file>",
		Short: "Self-check: config, parse diagnostics, FTS5 index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseChat(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "=== Config ===")
			if c.cfg.Path == "" {
				fmt.Fprintln(w, "  Path: (defaults)")
			} else {
				fmt.Fprintf(w, "  Path: %s\n", c.cfg.Path)
			}
			fmt.Fprintf(w, "  Date order:     %s\n", c.cfg.DateOrder)
			fmt.Fprintf(w, "  Media markers:  %d\n", len(c.cfg.MediaPlaceholders)+len(c.cfg.MediaMarkers))
			fmt.Fprintf(w, "  System notices: %d\n", len(c.cfg.SystemNotices))

			fmt.Fprintln(w, "\n=== File ===")
			fmt.Fprintf(w, "  Path: %s\n", c.path)
			fmt.Fprintf(w, "  Size: %s\n", humanize.Bytes(uint64(c.result.Size)))

			printParseStats(w, c)

			fmt.Fprintln(w, "\n=== FTS5 ===")
			db, err := index.Build(c.records())
			if err != nil {
				fmt.Fprintf(w, "  Index error: %v\n", err)
				return nil
			}
			defer db.Close()

			msgCount, err := db.MessageCount()
			if err != nil {
				return fmt.Errorf("count messages: %w", err)
			}
			ftsCount, err := db.FTSCount()
			if err != nil {
				fmt.Fprintf(w, "  FTS5 error: %v\n", err)
				return nil
			}
			fmt.Fprintf(w, "  Messages:     %d\n", msgCount)
			fmt.Fprintf(w, "  FTS5 entries: %d\n", ftsCount)
			if ftsCount == msgCount {
				fmt.Fprintln(w, "  Status: OK (synced)")
			} else {
				fmt.Fprintf(w, "  Status: MISMATCH (messages=%d, fts=%d)\n", msgCount, ftsCount)
			}
			checkLookup(w, db, c)
			return nil
		},
	}
}

func printParseStats(w io.Writer, c *chat) {
	st := c.result.Stats
	fmt.Fprintln(w, "\n=== Parse ===")
	fmt.Fprintf(w, "  Lines:          %d\n", st.Lines)
	fmt.Fprintf(w, "  Headers:        %d\n", st.Headers)
	fmt.Fprintf(w, "  Continuations:  %d\n", st.Continuations)
	fmt.Fprintf(w, "  System notices: %d\n", st.Notices)
	fmt.Fprintf(w, "  Events:         %d\n", st.Events)
	fmt.Fprintf(w, "  Blank:          %d\n", st.Blank)
	fmt.Fprintf(w, "  Orphans:        %d\n", st.Orphans)
	fmt.Fprintf(w, "  Media:          %d\n", st.Media)

	if len(c.records()) == 0 {
		fmt.Fprintf(w, "  Status: %v (check date_order and the export format)\n", errNoMessages)
		return
	}

	s := stats.Summarize(c.records(), c.cfg.StatsOptions())
	fmt.Fprintf(w, "  Senders:        %d\n", len(s.Senders))
	if s.First.IsZero() {
		fmt.Fprintln(w, "  Span:           unavailable (no valid dates)")
	} else {
		fmt.Fprintf(w, "  Span:           %s to %s\n", s.First.Format(time.DateOnly), s.Last.Format(time.DateOnly))
	}
	if s.Untimed > 0 {
		fmt.Fprintf(w, "  Untimed:        %d\n", s.Untimed)
	}
}

// checkLookup reads the last message back from the index and compares it
// with the parsed record.
func checkLookup(w io.Writer, db *index.DB, c *chat) {
	last := len(c.records()) - 1
	if last < 0 {
		return
	}
	want := c.records()[last]
	row, err := db.GetMessage(last)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  Lookup error: %v\n", err)
	case row == nil || row.Sender != want.Sender || row.LineNumber != want.Line:
		fmt.Fprintf(w, "  Lookup: MISMATCH for message #%d\n", last)
	default:
		fmt.Fprintf(w, "  Lookup: OK (#%d, line %d)\n", row.Seq, row.LineNumber)
	}
}
