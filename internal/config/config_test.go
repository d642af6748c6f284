package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if len(cfg.Sources) == 0 {
		t.Error("expected at least one default source")
	}
	if len(cfg.EnabledSources()) != 0 {
		t.Error("expected default sources to be disabled")
	}
	if cfg.PageSize != 6 {
		t.Errorf("expected default page_size 6, got %d", cfg.PageSize)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults must validate: %v", err)
	}
}

func TestGetPageSize(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{0, 6},
		{-1, 6},
		{9, 9},
	}
	for _, tt := range tests {
		cfg := &Config{PageSize: tt.size}
		if got := cfg.GetPageSize(); got != tt.want {
			t.Errorf("GetPageSize(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestForYouDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"", 0},
		{"24h", 24 * time.Hour},
		{"2d", 48 * time.Hour},
		{"garbage", 0},
	}
	for _, tt := range tests {
		cfg := &Config{ForYouWindow: tt.input}
		if got := cfg.ForYouDuration(); got != tt.want {
			t.Errorf("ForYouDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestToastDuration(t *testing.T) {
	if got := (&Config{}).ToastDuration(); got != 2*time.Second {
		t.Errorf("expected 2s default, got %v", got)
	}
	if got := (&Config{Toast: "500ms"}).ToastDuration(); got != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", got)
	}
}

func TestRefreshDuration(t *testing.T) {
	cfg := &Config{RefreshInterval: "30m"}
	d := cfg.RefreshDuration()
	if d.Minutes() != 30 {
		t.Errorf("expected 30m, got %v", d)
	}

	cfg.RefreshInterval = "invalid"
	d = cfg.RefreshDuration()
	if d.Hours() != 12 {
		t.Errorf("expected 12h default for invalid interval, got %v", d)
	}
}

func TestRetentionDuration(t *testing.T) {
	tests := []struct {
		input    string
		wantDays int
	}{
		{"90d", 90},
		{"7d", 7},
		{"720h", 30},
		{"", 30},
		{"invalid", 30},
	}
	for _, tt := range tests {
		cfg := &Config{Retention: tt.input}
		got := cfg.RetentionDuration()
		wantHours := float64(tt.wantDays * 24)
		if got.Hours() != wantHours {
			t.Errorf("RetentionDuration(%q) = %v, want %dd", tt.input, got, tt.wantDays)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		err   bool
	}{
		{"7d", 7 * 24 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"24h", 24 * time.Hour, false},
		{"2h30m", 2*time.Hour + 30*time.Minute, false},
		{"invalid", 0, true},
		{"", 0, true},
		{"d", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDuration(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDuration(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEnabledSources(t *testing.T) {
	cfg := &Config{
		Sources: []Source{
			{Name: "A", Enabled: true},
			{Name: "B", Enabled: false},
			{Name: "C", Enabled: true},
		},
	}
	names := cfg.SourceNames()
	if len(names) != 2 || names[0] != "A" || names[1] != "C" {
		t.Errorf("unexpected enabled sources: %v", names)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `page_size: 9
for_you_window: 24h
persist_bookmarks: true
sources:
  - name: Test
    type: rss
    url: https://example.com/feed
    enabled: true
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetPageSize() != 9 {
		t.Errorf("expected page size 9, got %d", cfg.GetPageSize())
	}
	if cfg.ForYouDuration() != 24*time.Hour {
		t.Errorf("expected 24h window, got %v", cfg.ForYouDuration())
	}
	if !cfg.PersistBookmarks {
		t.Error("expected persist_bookmarks true")
	}
	if len(cfg.Sources) != 1 || cfg.Sources[0].Name != "Test" {
		t.Errorf("expected file sources to replace defaults, got %v", cfg.Sources)
	}
	// Unset keys keep their defaults.
	if cfg.RefreshInterval != "12h" {
		t.Errorf("expected default refresh interval, got %q", cfg.RefreshInterval)
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Sources) == 0 {
		t.Error("expected default sources when config doesn't exist")
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GREENSTREAM_PAGE_SIZE", "9")
	t.Setenv("GREENSTREAM_FOR_YOU_WINDOW", "48h")
	t.Setenv("GREENSTREAM_PERSIST_BOOKMARKS", "true")
	t.Setenv("GREENSTREAM_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageSize != 9 || cfg.ForYouWindow != "48h" || !cfg.PersistBookmarks || cfg.Log.Level != "debug" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestEnvOverrideInvalidLevel(t *testing.T) {
	t.Setenv("GREENSTREAM_LOG_LEVEL", "loud")
	if _, err := Load(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestLogPath(t *testing.T) {
	cfg := &Config{Log: LogConfig{Path: "/tmp/gs.log"}}
	if cfg.LogPath() != "/tmp/gs.log" {
		t.Errorf("expected configured log path, got %s", cfg.LogPath())
	}
	if filepath.Base((&Config{}).LogPath()) != "greenstream.log" {
		t.Errorf("unexpected default log path %s", (&Config{}).LogPath())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"missing name", Config{Sources: []Source{{Type: "rss", URL: "https://example.com"}}}, true},
		{"missing url", Config{Sources: []Source{{Name: "Test", Type: "rss"}}}, true},
		{"invalid type", Config{Sources: []Source{{Name: "Test", Type: "json", URL: "https://example.com"}}}, true},
		{"file scheme", Config{Sources: []Source{{Name: "Test", Type: "rss", URL: "file:///etc/passwd"}}}, true},
		{"negative page size", Config{PageSize: -2}, true},
		{"bad window", Config{ForYouWindow: "soon"}, true},
		{"https", Config{Sources: []Source{{Name: "Test", Type: "rss", URL: "https://example.com/feed"}}}, false},
		{"http atom", Config{Sources: []Source{{Name: "Test", Type: "atom", URL: "http://example.com/feed"}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
