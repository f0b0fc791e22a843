package resolve

import (
	"context"
	"log/slog"
	"time"

	"reelfeed/internal/catalog"
	"reelfeed/internal/logging"
	"reelfeed/internal/tmdb"
)

const (
	// BatchSize is how many provider lookups run concurrently.
	BatchSize = 5
	// BatchPause is the flat delay between lookup batches.
	BatchPause = 500 * time.Millisecond
)

// Resolver queries the metadata provider and normalizes candidates into
// catalog records.
type Resolver struct {
	searcher  tmdb.Searcher
	logger    *slog.Logger
	batchSize int
	pause     time.Duration
	now       func() time.Time
}

var _ catalog.TitleResolver = (*Resolver)(nil)

// Option configures a Resolver.
type Option func(*Resolver)

// WithBatching overrides the concurrency width and inter-batch pause.
func WithBatching(size int, pause time.Duration) Option {
	return func(r *Resolver) {
		if size > 0 {
			r.batchSize = size
		}
		if pause >= 0 {
			r.pause = pause
		}
	}
}

// WithClock overrides the time source used for date-added stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates a resolver backed by the given searcher.
func New(searcher tmdb.Searcher, logger *slog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		searcher:  searcher,
		logger:    logging.NewComponentLogger(logger, "resolver"),
		batchSize: BatchSize,
		pause:     BatchPause,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve looks up a title and normalizes the candidate at the given rank.
// Rank 0 is the provider's best match; rank 1 is the second choice used for
// duplicate disambiguation. Any provider failure, an empty result set, or a
// missing rank degrades to the unresolved fallback record.
func (r *Resolver) Resolve(ctx context.Context, title string, rank int) catalog.Record {
	fallback := catalog.Record{
		Title:     title,
		DateAdded: r.now().UnixMilli(),
		SearchURL: catalog.SearchURL(title, 0),
	}

	resp, err := r.searcher.SearchMulti(ctx, title)
	if err != nil {
		r.logger.Warn("provider lookup failed, using fallback",
			logging.String("title", title),
			logging.Error(err))
		return fallback
	}
	if resp == nil || rank < 0 || rank >= len(resp.Results) {
		return fallback
	}

	return r.normalize(resp.Results[rank])
}

// ResolveBatch resolves titles at the given rank in fixed-size concurrent
// batches with a flat pause between batches. Results are in input order.
func (r *Resolver) ResolveBatch(ctx context.Context, titles []string, rank int) []catalog.Record {
	return InBatches(ctx, titles, r.batchSize, r.pause, func(ctx context.Context, title string) catalog.Record {
		return r.Resolve(ctx, title, rank)
	})
}

// normalize collapses the provider's movie/tv field split (title vs name,
// release date vs first air date) into one canonical record.
func (r *Resolver) normalize(candidate tmdb.Result) catalog.Record {
	title := candidate.Title
	if title == "" {
		title = candidate.Name
	}
	date := candidate.ReleaseDate
	if date == "" {
		date = candidate.FirstAirDate
	}
	year := releaseYear(date)

	return catalog.Record{
		ID:          candidate.ID,
		Title:       title,
		ReleaseDate: date,
		ReleaseYear: year,
		MediaType:   candidate.MediaType,
		DateAdded:   r.now().UnixMilli(),
		SearchURL:   catalog.SearchURL(title, year),
	}
}

// releaseYear extracts the calendar year from an ISO date. A malformed or
// empty date yields zero, which downstream treats as absent.
func releaseYear(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return t.Year()
}
