package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that the configuration is complete enough to run.
func (c *Config) Validate() error {
	var problems []string

	if c.Watchlist.URL == "" {
		problems = append(problems, "watchlist.url is required (or set REELFEED_WATCHLIST_URL)")
	} else if parsed, err := url.Parse(c.Watchlist.URL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		problems = append(problems, fmt.Sprintf("watchlist.url %q is not an absolute URL", c.Watchlist.URL))
	}

	if c.TMDB.APIKey == "" {
		problems = append(problems, "tmdb.api_key is required (or set TMDB_API_KEY)")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid configuration:\n  - " + strings.Join(problems, "\n  - "))
}
