package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeWatchlist()
	c.normalizeTMDB()
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath
	}
	if c.Cache.Path, err = ExpandPath(c.Cache.Path); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	if strings.TrimSpace(c.Output.FeedPath) == "" {
		c.Output.FeedPath = defaultFeedPath
	}
	if c.Output.FeedPath, err = ExpandPath(c.Output.FeedPath); err != nil {
		return fmt.Errorf("output.feed_path: %w", err)
	}
	if strings.TrimSpace(c.Output.UnknownsPath) == "" {
		c.Output.UnknownsPath = defaultUnknownsPath
	}
	if c.Output.UnknownsPath, err = ExpandPath(c.Output.UnknownsPath); err != nil {
		return fmt.Errorf("output.unknowns_path: %w", err)
	}
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	if c.History.Path, err = ExpandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeWatchlist() {
	c.Watchlist.URL = strings.TrimSpace(c.Watchlist.URL)
	if c.Watchlist.URL != "" && !strings.HasSuffix(c.Watchlist.URL, "/") {
		c.Watchlist.URL += "/"
	}
	if strings.TrimSpace(c.Watchlist.Selector) == "" {
		c.Watchlist.Selector = defaultSelector
	}
	c.Watchlist.Attribute = strings.TrimSpace(c.Watchlist.Attribute)
	if c.Watchlist.RequestTimeout <= 0 {
		c.Watchlist.RequestTimeout = defaultRequestTimeout
	}
}

func (c *Config) normalizeTMDB() {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	if strings.TrimSpace(c.TMDB.Language) == "" {
		c.TMDB.Language = defaultTMDBLanguage
	}
}

func (c *Config) normalizeOutput() {
	if strings.TrimSpace(c.Output.FeedTitle) == "" {
		c.Output.FeedTitle = defaultFeedTitle
	}
	if strings.TrimSpace(c.Output.FeedLink) == "" {
		c.Output.FeedLink = c.Watchlist.URL
	}
	if strings.TrimSpace(c.Output.FeedDescription) == "" {
		c.Output.FeedDescription = defaultFeedDescription
	}
	if c.Cache.FreshMinutes <= 0 {
		c.Cache.FreshMinutes = defaultFreshMinutes
	}
}

func (c *Config) normalizeLogging() {
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaultLogFormat
	}
}
