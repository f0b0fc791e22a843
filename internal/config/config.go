package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Watchlist configures the scraped source page.
type Watchlist struct {
	// URL is the first page of the watchlist. Subsequent pages are fetched
	// by appending "page/N/".
	URL string `toml:"url"`
	// Selector is the goquery selector matching one entry per element.
	Selector string `toml:"selector"`
	// Attribute names the attribute holding the entry label; empty means the
	// element text.
	Attribute string `toml:"attribute"`
	// RequestTimeout bounds a single page fetch, in seconds.
	RequestTimeout int `toml:"request_timeout"`
}

// TMDB contains configuration for The Movie Database API.
type TMDB struct {
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	Language string `toml:"language"`
}

// Cache configures the on-disk record cache and its staleness policy.
type Cache struct {
	Path string `toml:"path"`
	// FreshMinutes is the window during which a cache is considered fresh and
	// no re-scrape happens.
	FreshMinutes int `toml:"fresh_minutes"`
	// ForceRefresh bypasses freshness and currency checks and re-resolves
	// every title. Also settable via REELFEED_FORCE_REFRESH or --force.
	ForceRefresh bool `toml:"force_refresh"`
}

// Output configures the emitted artifacts.
type Output struct {
	FeedPath        string `toml:"feed_path"`
	UnknownsPath    string `toml:"unknowns_path"`
	FeedTitle       string `toml:"feed_title"`
	FeedLink        string `toml:"feed_link"`
	FeedDescription string `toml:"feed_description"`
}

// History configures the per-run summary database.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for reelfeed.
type Config struct {
	Watchlist Watchlist `toml:"watchlist"`
	TMDB      TMDB      `toml:"tmdb"`
	Cache     Cache     `toml:"cache"`
	Output    Output    `toml:"output"`
	History   History   `toml:"history"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/reelfeed/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has environment overrides applied and all path fields expanded.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// applyEnv maps supported environment variables over the decoded values.
func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("TMDB_API_KEY")); v != "" {
		c.TMDB.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("REELFEED_WATCHLIST_URL")); v != "" {
		c.Watchlist.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("REELFEED_FORCE_REFRESH")); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Cache.ForceRefresh = parsed
		}
	}
}

// CreateSample writes the embedded sample configuration to the given path.
func CreateSample(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// ExpandPath resolves a leading ~ against the current user's home directory
// and returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}
