package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[watchlist]
url = "https://example.com/user/watchlist"

[tmdb]
api_key = "secret"
`)

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as existing")
	}

	if cfg.TMDB.BaseURL != defaultTMDBBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.TMDB.BaseURL)
	}
	if cfg.Cache.FreshMinutes != defaultFreshMinutes {
		t.Errorf("FreshMinutes = %d, want %d", cfg.Cache.FreshMinutes, defaultFreshMinutes)
	}
	if !strings.HasSuffix(cfg.Watchlist.URL, "/") {
		t.Errorf("URL not normalized with trailing slash: %q", cfg.Watchlist.URL)
	}
	if cfg.Output.FeedLink != cfg.Watchlist.URL {
		t.Errorf("FeedLink = %q, want watchlist URL", cfg.Output.FeedLink)
	}
	if !filepath.IsAbs(cfg.Cache.Path) {
		t.Errorf("cache path not expanded: %q", cfg.Cache.Path)
	}
}

func TestLoadRequiresWatchlistURL(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
api_key = "secret"
`)

	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for missing watchlist url")
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	path := writeConfig(t, `
[watchlist]
url = "https://example.com/user/watchlist/"
`)

	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for missing api key")
	}
}

func TestLoadRejectsRelativeURL(t *testing.T) {
	path := writeConfig(t, `
[watchlist]
url = "watchlist/page"

[tmdb]
api_key = "secret"
`)

	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for relative url")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[watchlist]
url = "https://example.com/user/watchlist/"

[tmdb]
api_key = "from-file"
`)

	t.Setenv("TMDB_API_KEY", "from-env")
	t.Setenv("REELFEED_FORCE_REFRESH", "true")

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TMDB.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want env override", cfg.TMDB.APIKey)
	}
	if !cfg.Cache.ForceRefresh {
		t.Error("ForceRefresh not set from env")
	}
}

func TestEnvSuppliesRequiredValues(t *testing.T) {
	path := writeConfig(t, "")

	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("REELFEED_WATCHLIST_URL", "https://example.com/u/watchlist")

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Watchlist.URL != "https://example.com/u/watchlist/" {
		t.Errorf("URL = %q", cfg.Watchlist.URL)
	}
}

func TestCreateSampleRoundTrip(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[watchlist]") {
		t.Error("sample missing watchlist section")
	}
}
