package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/chatstat/internal/render"
	"github.com/Zuo-Peng/chatstat/internal/search"
	"github.com/Zuo-Peng/chatstat/internal/stats"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var filters filterFlags
	var plain bool

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Summarize a chat export: senders, media, words, emoji, active hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := filters.options()
			if err != nil {
				return err
			}

			c, err := loadChat(args[0])
			if err != nil {
				return err
			}

			records := search.Filter(c.records(), opts)
			if len(records) == 0 {
				log.Warn("no messages match the filters", "total", len(c.records()))
			}

			s := stats.Summarize(records, c.cfg.StatsOptions())
			if s.CorpusEmpty() {
				log.Warn("corpus is empty, word analysis skipped")
			}

			out := cmd.OutOrStdout()
			if plain || !isTerminal(os.Stdout) {
				fmt.Fprint(out, s.Report())
				return nil
			}
			fmt.Fprintln(out, render.Report(s, render.ReportOptions{Title: c.title()}))
			return nil
		},
	}

	filters.register(cmd, false)
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain text report even on a terminal")

	return cmd
}
