package config

const (
	defaultSelector        = "li.poster-container img"
	defaultAttribute       = "alt"
	defaultRequestTimeout  = 15
	defaultTMDBBaseURL     = "https://api.themoviedb.org/3"
	defaultTMDBLanguage    = "en-US"
	defaultCachePath       = "~/.cache/reelfeed/watchlist.json"
	defaultFreshMinutes    = 60
	defaultFeedPath        = "~/.local/share/reelfeed/watchlist.xml"
	defaultUnknownsPath    = "~/.local/share/reelfeed/unknowns.json"
	defaultFeedTitle       = "Watchlist"
	defaultFeedDescription = "Scraped watchlist entries with resolved metadata"
	defaultHistoryPath     = "~/.local/share/reelfeed/history.db"
	defaultLogLevel        = "info"
	defaultLogFormat       = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Watchlist: Watchlist{
			Selector:       defaultSelector,
			Attribute:      defaultAttribute,
			RequestTimeout: defaultRequestTimeout,
		},
		TMDB: TMDB{
			BaseURL:  defaultTMDBBaseURL,
			Language: defaultTMDBLanguage,
		},
		Cache: Cache{
			Path:         defaultCachePath,
			FreshMinutes: defaultFreshMinutes,
		},
		Output: Output{
			FeedPath:        defaultFeedPath,
			UnknownsPath:    defaultUnknownsPath,
			FeedTitle:       defaultFeedTitle,
			FeedDescription: defaultFeedDescription,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
