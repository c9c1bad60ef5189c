package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/Zuo-Peng/chatstat/internal/config"
	"github.com/Zuo-Peng/chatstat/internal/parse"
	"github.com/Zuo-Peng/chatstat/internal/search"
	"github.com/spf13/cobra"
)

var errNoMessages = errors.New("no valid messages found")

// chat is a parsed export together with the config it was parsed with.
type chat struct {
	cfg    *config.Config
	path   string
	result *parse.Result
}

func (c *chat) records() []parse.Record { return c.result.Records }

func (c *chat) title() string { return filepath.Base(c.path) }

// parseChat loads the config and parses path. A file without messages is
// not an error here.
func parseChat(path string) (*chat, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	res, err := parse.ParseFile(path, cfg.ParseOptions())
	if err != nil {
		var pe *parse.ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("could not open %s: %w", pe.Path, pe.Err)
		}
		return nil, err
	}
	log.Debug("parsed export", "path", path, "records", len(res.Records), "stats", res.Stats.String())
	if res.Stats.Orphans > 0 {
		log.Debug("dropped lines before the first message", "count", res.Stats.Orphans)
	}

	return &chat{cfg: cfg, path: path, result: res}, nil
}

// loadChat is parseChat for commands that need at least one message.
func loadChat(path string) (*chat, error) {
	c, err := parseChat(path)
	if err != nil {
		return nil, err
	}
	if len(c.records()) == 0 {
		log.Warn("no message headers recognized", "path", path, "lines", c.result.Stats.Lines)
		return nil, fmt.Errorf("%s: %w", path, errNoMessages)
	}
	return c, nil
}

// parseSeq parses a message number as printed by search and preview.
func parseSeq(arg string, n int) (int, error) {
	seq, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid message number %q", arg)
	}
	if seq < 0 || seq >= n {
		return 0, fmt.Errorf("message %d out of range (0-%d)", seq, n-1)
	}
	return seq, nil
}

// filterFlags are the record filters shared by report, search and browse.
type filterFlags struct {
	sender string
	kind   string
	since  string
	until  string
}

func (f *filterFlags) register(cmd *cobra.Command, withKind bool) {
	cmd.Flags().StringVar(&f.sender, "sender", "", "Only messages from this sender")
	if withKind {
		cmd.Flags().StringVar(&f.kind, "kind", "", "Filter by kind (text/media)")
	}
	cmd.Flags().StringVar(&f.since, "since", "", "Only messages on or after date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.until, "until", "", "Only messages on or before date (YYYY-MM-DD)")
}

func (f *filterFlags) options() (search.Options, error) {
	switch parse.Kind(f.kind) {
	case "", parse.KindText, parse.KindMedia:
	default:
		return search.Options{}, fmt.Errorf("invalid kind %q (want text or media)", f.kind)
	}

	r, err := search.ParseRange(f.since, f.until)
	if err != nil {
		return search.Options{}, err
	}
	return search.Options{Sender: f.sender, Kind: f.kind, Range: r}, nil
}
