package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/chatstat/internal/index"
	"github.com/Zuo-Peng/chatstat/internal/render"
	"github.com/Zuo-Peng/chatstat/internal/search"
	"github.com/Zuo-Peng/chatstat/internal/tui"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	var filters filterFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse all messages of an export",
		Long:  `Opens a TUI panel showing every message in file order. Type to filter by message text. When stdout is not a terminal the whole conversation is printed instead.`,
		Args:  cobra.ExactArgs(1),
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

			if !isTerminal(os.Stdout) {
				out, _ := render.Conversation(search.Filter(c.records(), opts), render.Options{Hit: -1, Title: c.title()})
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}

			db, err := index.Build(c.records())
			if err != nil {
				return err
			}
			defer db.Close()

			return tui.RunList(tui.Session{DB: db, Records: c.records(), Title: c.title()}, opts)
		},
	}

	filters.register(cmd, true)
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (0 = no limit)")

	return cmd
}
