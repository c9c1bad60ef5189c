package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/chatstat/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func previewCmd() *cobra.Command {
	var context int
	var query string

	cmd := &cobra.Command{
		Use:   "preview <file> <seq>",
		Short: "Preview the conversation around a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChat(args[0])
			if err != nil {
				return err
			}

			seq, err := parseSeq(args[1], len(c.records()))
			if err != nil {
				return err
			}

			width := 0
			if isTerminal(os.Stdout) {
				if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
					width = w
				}
			}

			out, _ := render.Conversation(c.records(), render.Options{
				Hit:     seq,
				Context: context,
				Width:   width,
				Query:   query,
				Title:   c.title(),
			})
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&context, "context", 10, "Messages before/after the hit to show")
	cmd.Flags().StringVar(&query, "query", "", "Search query for keyword highlighting")

	return cmd
}
