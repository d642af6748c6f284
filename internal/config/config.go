package config

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const appName = "greenstream"

type Source struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Path  string `yaml:"path,omitempty"`
}

type Config struct {
	PageSize         int       `yaml:"page_size"`
	ForYouWindow     string    `yaml:"for_you_window,omitempty"`
	PersistBookmarks bool      `yaml:"persist_bookmarks"`
	Toast            string    `yaml:"toast_duration,omitempty"`
	RefreshInterval  string    `yaml:"refresh_interval"`
	Retention        string    `yaml:"retention"`
	Sources          []Source  `yaml:"sources"`
	Log              LogConfig `yaml:"log"`
}

// GetPageSize returns the All News page size, defaulting to 6.
func (c *Config) GetPageSize() int {
	if c.PageSize <= 0 {
		return news.DefaultPageSize
	}
	return c.PageSize
}

// ForYouDuration is the For You recency window; zero means no window.
func (c *Config) ForYouDuration() time.Duration {
	if c.ForYouWindow == "" {
		return 0
	}
	d, err := ParseDuration(c.ForYouWindow)
	if err != nil {
		return 0
	}
	return d
}

// ToastDuration is how long confirmation messages stay on screen.
func (c *Config) ToastDuration() time.Duration {
	d, err := time.ParseDuration(c.Toast)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

func (c *Config) RefreshDuration() time.Duration {
	d, err := ParseDuration(c.RefreshInterval)
	if err != nil {
		return 12 * time.Hour
	}
	return d
}

func (c *Config) RetentionDuration() time.Duration {
	if c.Retention == "" {
		return 30 * 24 * time.Hour
	}
	d, err := ParseDuration(c.Retention)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

func (c *Config) SourceNames() []string {
	var names []string
	for _, s := range c.EnabledSources() {
		names = append(names, s.Name)
	}
	return names
}

// ParseDuration accepts time.ParseDuration syntax plus whole days ("7d").
func ParseDuration(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func DataPath() string {
	return filepath.Join(xdg.DataHome, appName, appName+".db")
}

// LogPath returns the configured log file, or the XDG state location.
func (c *Config) LogPath() string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default location), writing the
// embedded defaults there on first run. A .env file in the working
// directory and GREENSTREAM_* variables override file values.
func Load(path string) (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults still apply.
			_ = writeDefaults(path)
			defaults.applyEnvOverrides()
			if err := validate(defaults); err != nil {
				return nil, err
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := *defaults
	cfg.Sources = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyEnvOverrides()

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GREENSTREAM_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PageSize = n
		}
	}
	if v := os.Getenv("GREENSTREAM_FOR_YOU_WINDOW"); v != "" {
		c.ForYouWindow = v
	}
	if v := os.Getenv("GREENSTREAM_PERSIST_BOOKMARKS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.PersistBookmarks = b
		}
	}
	if v := os.Getenv("GREENSTREAM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// validate reports every problem in cfg at once.
func validate(cfg *Config) error {
	var errs []error
	if cfg.PageSize < 0 {
		errs = append(errs, fmt.Errorf("page_size: must not be negative, got %d", cfg.PageSize))
	}
	if cfg.ForYouWindow != "" {
		if _, err := ParseDuration(cfg.ForYouWindow); err != nil {
			errs = append(errs, fmt.Errorf("for_you_window: %w", err))
		}
	}
	if !logLevels[cfg.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level: %q is not one of debug, info, warn, error", cfg.Log.Level))
	}
	for i, s := range cfg.Sources {
		if err := s.check(); err != nil {
			errs = append(errs, fmt.Errorf("sources[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

var logLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}

var feedTypes = map[string]bool{"rss": true, "atom": true}

func (s Source) check() error {
	switch {
	case s.Name == "":
		return errors.New("name is required")
	case s.URL == "":
		return fmt.Errorf("%s: url is required", s.Name)
	case !feedTypes[s.Type]:
		return fmt.Errorf("%s: type %q is not rss or atom", s.Name, s.Type)
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: feeds are fetched over http or https, not %q", s.Name, u.Scheme)
	}
	return nil
}
