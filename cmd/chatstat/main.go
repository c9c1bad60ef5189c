package main

import (
	"fmt"
	"os"

	"github.com/Zuo-Peng/chatstat/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

var log = logger.New(os.Stderr, false, false)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "chatstat",
		Short:         "chatstat - parse chat exports and report who said what, when",
		Version:       version,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.New(os.Stderr, verbose, isTerminal(os.Stderr))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log parse diagnostics")

	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(wordsCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(doctorCmd())

	return rootCmd
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
