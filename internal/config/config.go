package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/Zuo-Peng/chatstat/internal/parse"
	"github.com/Zuo-Peng/chatstat/internal/stats"
)

type Config struct {
	MediaPlaceholders []string `toml:"media_placeholders"`
	MediaMarkers      []string `toml:"media_markers"`
	SystemNotices     []string `toml:"system_notices"`
	DateOrder         string   `toml:"date_order"`
	TopHours          int      `toml:"top_hours"`
	Stopwords         []string `toml:"stopwords"`
	Editor            string   `toml:"editor"`

	// Path is the file the config was read from, empty when defaults apply.
	Path string `toml:"-"`
}

func Default() *Config {
	return &Config{
		// cloned: the decoder reuses slice backing arrays
		MediaPlaceholders: slices.Clone(parse.DefaultMediaPlaceholders),
		MediaMarkers:      slices.Clone(parse.DefaultMediaMarkers),
		SystemNotices:     slices.Clone(parse.DefaultSystemNotices),
		DateOrder:         string(parse.DayMonthYear),
		TopHours:          stats.DefaultTopHours,
		Stopwords:         slices.Clone(stats.DefaultStopwords),
	}
}

// Load reads $CHATSTAT_CONFIG or ~/.config/chatstat/config.toml. A missing
// file is not an error.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfgPath := os.Getenv("CHATSTAT_CONFIG")
	if cfgPath == "" {
		cfgPath = filepath.Join(home, ".config", "chatstat", "config.toml")
	}
	return LoadFrom(expandHome(cfgPath, home))
}

func LoadFrom(cfgPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
		cfg.Path = cfgPath
	}

	if _, err := parse.ParseDateOrder(cfg.DateOrder); err != nil {
		return nil, fmt.Errorf("config %s: %w", cfgPath, err)
	}
	if cfg.TopHours <= 0 {
		cfg.TopHours = stats.DefaultTopHours
	}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.Editor = expandHome(cfg.Editor, home)
	}
	return cfg, nil
}

func (c *Config) ParseOptions() parse.Options {
	order, _ := parse.ParseDateOrder(c.DateOrder)
	return parse.Options{
		MediaPlaceholders: c.MediaPlaceholders,
		MediaMarkers:      c.MediaMarkers,
		SystemNotices:     c.SystemNotices,
		DateOrder:         order,
	}
}

func (c *Config) StatsOptions() stats.Options {
	opts := stats.DefaultOptions()
	opts.TopHours = c.TopHours
	return opts
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
