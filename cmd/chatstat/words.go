package main

import (
	"fmt"

	"github.com/Zuo-Peng/chatstat/internal/stats"
	"github.com/spf13/cobra"
)

func wordsCmd() *cobra.Command {
	var top int
	var corpus bool

	cmd := &cobra.Command{
		Use:   "words <file>",
		Short: "Most frequent words across text messages",
		Long: `Counts words across all text message bodies, skipping stopwords
(configurable via stopwords in config.toml). With --corpus the joined
text is printed instead, one string, for piping into other tools.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChat(args[0])
			if err != nil {
				return err
			}

			s := stats.Summarize(c.records(), c.cfg.StatsOptions())
			if s.CorpusEmpty() {
				log.Warn("corpus is empty", "messages", s.Total, "media", s.Media)
				return nil
			}

			out := cmd.OutOrStdout()
			if corpus {
				fmt.Fprintln(out, s.Corpus)
				return nil
			}

			for _, w := range stats.WordFrequencies(s.Corpus, c.cfg.Stopwords, top) {
				fmt.Fprintf(out, "%6d  %s\n", w.Count, w.Word)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 20, "Number of words to show (0 = all)")
	cmd.Flags().BoolVar(&corpus, "corpus", false, "Print the raw corpus instead of counts")

	return cmd
}
