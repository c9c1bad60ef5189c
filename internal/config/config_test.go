package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Zuo-Peng/chatstat/internal/parse"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("path = %q", cfg.Path)
	}
	opts := cfg.ParseOptions()
	if opts.DateOrder != parse.DayMonthYear || len(opts.MediaMarkers) == 0 {
		t.Errorf("parse options = %+v", opts)
	}
	if cfg.StatsOptions().TopHours != 5 {
		t.Errorf("top hours = %d", cfg.StatsOptions().TopHours)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	path := writeConfig(t, `
media_markers = ["<attached>"]
date_order = "mdy"
top_hours = 3
stopwords = ["lol"]
`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != path {
		t.Errorf("path = %q", cfg.Path)
	}
	opts := cfg.ParseOptions()
	if opts.DateOrder != parse.MonthDayYear {
		t.Errorf("date order = %q", opts.DateOrder)
	}
	if len(opts.MediaMarkers) != 1 || opts.MediaMarkers[0] != "<attached>" {
		t.Errorf("media markers = %v", opts.MediaMarkers)
	}
	if len(opts.MediaPlaceholders) != len(parse.DefaultMediaPlaceholders) {
		t.Errorf("media placeholders = %v", opts.MediaPlaceholders)
	}
	// unset keys keep their defaults
	if len(opts.SystemNotices) != len(parse.DefaultSystemNotices) {
		t.Errorf("system notices = %v", opts.SystemNotices)
	}
	if cfg.StatsOptions().TopHours != 3 {
		t.Errorf("top hours = %d", cfg.StatsOptions().TopHours)
	}
	if len(cfg.Stopwords) != 1 {
		t.Errorf("stopwords = %v", cfg.Stopwords)
	}
}

func TestLoadFrom_BadDateOrder(t *testing.T) {
	path := writeConfig(t, `date_order = "ymd"`)
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := writeConfig(t, `top_hours = "many"`)
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `top_hours = 7`)
	t.Setenv("CHATSTAT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TopHours != 7 {
		t.Errorf("top hours = %d", cfg.TopHours)
	}
}

func TestExpandHome(t *testing.T) {
	if got := expandHome("~/bin/vim", "/home/u"); got != "/home/u/bin/vim" {
		t.Errorf("got %q", got)
	}
	if got := expandHome("vim", "/home/u"); got != "vim" {
		t.Errorf("got %q", got)
	}
}
