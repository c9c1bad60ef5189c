package main

import (
	"github.com/Zuo-Peng/chatstat/internal/open"
	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	var editor string

	cmd := &cobra.Command{
		Use:   "open <file> <seq>",
		Short: "Open the export in $EDITOR at the line of a message",
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

			if editor == "" {
				editor = c.cfg.Editor
			}
			rec := c.records()[seq]
			log.Debug("opening", "path", c.path, "line", rec.Line)
			return open.OpenAt(open.Editor(editor), c.path, rec.Line)
		},
	}

	cmd.Flags().StringVar(&editor, "editor", "", "Editor to use (default: config, then $EDITOR, then less)")

	return cmd
}
