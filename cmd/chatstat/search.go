package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Zuo-Peng/chatstat/internal/index"
	"github.com/Zuo-Peng/chatstat/internal/search"
	"github.com/Zuo-Peng/chatstat/internal/tui"
	"github.com/spf13/cobra"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorBlue    = "\033[1;34m"
	sColorMagenta = "\033[2;35m"
	sColorDim     = "\033[2m"
)

func colorizeKind(kind string) string {
	if kind == "media" {
		return sColorMagenta + kind + sColorReset
	}
	return kind
}

func colorizeSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", sColorBoldRed)
	snippet = strings.ReplaceAll(snippet, "<<<", sColorReset)
	return snippet
}

func tsvField(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func searchCmd() *cobra.Command {
	var filters filterFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "search <file> <query>",
		Short: "Full-text search across the messages of an export",
		Long: `Search message bodies using FTS5 (LIKE for CJK queries). Output is TSV
for fzf integration:
  seq, date time, sender, kind, snippet

Recommended shell function (add to .zshrc):
  chatf() {
    chatstat search "$1" "${*:2}" | fzf \
      --ansi \
      --delimiter='\t' --with-nth=2.. \
      --preview "chatstat preview $1 {1} --context 5 --query {q}" \
      --preview-window=right:60%:wrap \
      --bind "enter:execute(chatstat open $1 {1})"
  }`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := filters.options()
			if err != nil {
				return err
			}
			opts.Limit = limit

			c, err := loadChat(args[0])
			if err != nil {
				return err
			}

			db, err := index.Build(c.records())
			if err != nil {
				return err
			}
			defer db.Close()

			// Interactive TUI when stdout is a terminal; TSV output for pipes
			if isTerminal(os.Stdout) {
				return tui.Run(tui.Session{DB: db, Records: c.records(), Title: c.title()}, args[1], opts)
			}

			opts.Query = args[1]
			results, err := search.Search(db, opts)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No results found.")
				return nil
			}
			writeTSV(cmd.OutOrStdout(), results)
			return nil
		},
	}

	filters.register(cmd, true)
	cmd.Flags().IntVar(&limit, "limit", 100, "Max results")

	return cmd
}

func writeTSV(w io.Writer, results []search.Result) {
	for _, r := range results {
		snippet := tsvField(r.Snippet)
		if snippet == "" && r.Kind == "media" {
			snippet = "<media>"
		}
		// first field (seq) stays plain for fzf {1}
		fmt.Fprintf(w, "%d\t%s%s %s%s\t%s%s%s\t%s\t%s\n",
			r.Seq,
			sColorDim, r.Date, r.Time, sColorReset,
			sColorBlue, tsvField(r.Sender), sColorReset,
			colorizeKind(r.Kind),
			colorizeSnippet(snippet),
		)
	}
}
