package watchlist

import (
	"context"
	"log/slog"

	"reelfeed/internal/logging"
)

// maxPages is a hard cap on pagination, guarding against a listing that
// paginates forever.
const maxPages = 6

// Scraper drives a PageFetcher across sequential pages and flattens the
// results into one ordered title list.
type Scraper struct {
	fetcher PageFetcher
	logger  *slog.Logger
}

// NewScraper creates a scraper over the given fetcher.
func NewScraper(fetcher PageFetcher, logger *slog.Logger) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "scraper"),
	}
}

// Scrape walks pages in order until the listing repeats or the page cap is
// reached. When any entry equals the previous page's first entry the
// collection has wrapped and the scan stops there, discarding the remainder.
// Pages are fetched sequentially so this stall check stays meaningful. A
// failed page fetch is logged and treated as empty rather than aborting the
// scan. Exact duplicate labels are collapsed to their first occurrence.
func (s *Scraper) Scrape(ctx context.Context) []string {
	var titles []string
	seen := make(map[string]bool)
	prevFirst := ""

scan:
	for page := 0; page < maxPages; page++ {
		labels, err := s.fetcher.FetchPage(ctx, page)
		if err != nil {
			s.logger.Warn("page fetch failed, treating as empty",
				logging.Int("page", page),
				logging.Error(err))
			continue
		}
		if len(labels) == 0 {
			continue
		}

		for _, label := range labels {
			if prevFirst != "" && label == prevFirst {
				// The listing wrapped back to the previous page's start.
				break scan
			}
			if seen[label] {
				continue
			}
			seen[label] = true
			titles = append(titles, label)
		}
		prevFirst = labels[0]
	}

	s.logger.Debug("scrape complete", logging.Int("titles", len(titles)))
	return titles
}
