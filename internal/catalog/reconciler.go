package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"reelfeed/internal/logging"
	"reelfeed/internal/slug"
)

// FreshWindow is how long a cache generation is trusted without re-scraping.
const FreshWindow = time.Hour

// currencyProbe is how many leading entries are compared when deciding whether
// the cache still matches the live listing.
const currencyProbe = 10

// Scraper returns the ordered raw titles from the live watchlist. Fetch
// failures are absorbed inside the scraper; a partial or empty slice is a
// valid result.
type Scraper interface {
	Scrape(ctx context.Context) []string
}

// TitleResolver resolves raw titles against the metadata provider. Provider
// failures degrade to unresolved records, never errors.
type TitleResolver interface {
	Resolve(ctx context.Context, title string, rank int) Record
	ResolveBatch(ctx context.Context, titles []string, rank int) []Record
}

// Reconciler owns the cross-run state: it decides whether to re-scrape,
// whether the scrape materially differs from the cache, and how to merge
// fresh resolutions with cached records.
type Reconciler struct {
	store    *Store
	scraper  Scraper
	resolver TitleResolver
	// override forces a re-scrape and full re-resolution regardless of
	// freshness and currency.
	override bool
	freshFor time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithOverride forces the stale path: the cache is never considered fresh or
// current, and cached records are not reused during resolution.
func WithOverride(override bool) ReconcilerOption {
	return func(r *Reconciler) { r.override = override }
}

// WithFreshWindow overrides the freshness window.
func WithFreshWindow(d time.Duration) ReconcilerOption {
	return func(r *Reconciler) {
		if d > 0 {
			r.freshFor = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ReconcilerOption {
	return func(r *Reconciler) {
		if now != nil {
			r.now = now
		}
	}
}

// NewReconciler wires the reconciliation core.
func NewReconciler(store *Store, scraper Scraper, resolver TitleResolver, logger *slog.Logger, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		store:    store,
		scraper:  scraper,
		resolver: resolver,
		freshFor: FreshWindow,
		logger:   logging.NewComponentLogger(logger, "reconciler"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Outcome summarizes one reconciliation run.
type Outcome struct {
	// Records is the final ordered record set the artifacts are built from.
	Records []Record
	// Regenerated reports whether the cache file was rewritten.
	Regenerated bool
	// ScrapeRan reports whether the live listing was fetched.
	ScrapeRan bool
	// Scraped is the number of titles the scrape produced.
	Scraped int
	// Reused is the number of titles served from the cache without a
	// provider lookup.
	Reused int
	// Looked is the number of titles sent to the provider.
	Looked int
}

// Run executes one reconciliation cycle and returns the final record set.
// The cache file is rewritten only when regeneration happened.
func (r *Reconciler) Run(ctx context.Context) (Outcome, error) {
	cached, haveCache := r.store.Load()

	if haveCache && r.isFresh(cached.Generated) {
		r.logger.Info("cache is fresh, skipping scrape",
			logging.Int("records", len(cached.Data)))
		return Outcome{Records: cached.Data}, nil
	}

	titles := r.scraper.Scrape(ctx)
	r.logger.Info("scraped watchlist", logging.Int("titles", len(titles)))

	// A completely empty scrape with a usable cache means every page fetch
	// failed; keeping the cached records beats wiping them.
	if len(titles) == 0 && haveCache && len(cached.Data) > 0 {
		r.logger.Warn("scrape returned nothing, keeping cached records")
		return Outcome{Records: cached.Data, ScrapeRan: true}, nil
	}

	if haveCache && len(cached.Data) > 0 && !r.override && r.isCurrent(cached.Data, titles) {
		r.logger.Info("cache is current, no update needed")
		return Outcome{Records: cached.Data, ScrapeRan: true, Scraped: len(titles)}, nil
	}

	records, reused := r.regenerate(ctx, titles, cached.Data)

	// An interrupted batch leaves unprocessed slots zero-valued; persisting
	// them would poison the cache. Leave it untouched instead.
	if err := ctx.Err(); err != nil {
		return Outcome{}, fmt.Errorf("reconciliation interrupted: %w", err)
	}

	merged := mergeDateAdded(records, cached.Data)

	snap := Snapshot{Generated: r.now().UnixMilli(), Data: merged}
	if err := r.store.Save(snap); err != nil {
		return Outcome{}, fmt.Errorf("write cache: %w", err)
	}

	return Outcome{
		Records:     merged,
		Regenerated: true,
		ScrapeRan:   true,
		Scraped:     len(titles),
		Reused:      reused,
		Looked:      len(titles) - reused,
	}, nil
}

func (r *Reconciler) isFresh(generated int64) bool {
	if r.override {
		return false
	}
	age := r.now().Sub(time.UnixMilli(generated))
	return age < r.freshFor
}

// isCurrent compares the leading cached titles against the leading scraped
// titles by slug, position for position.
func (r *Reconciler) isCurrent(cached []Record, titles []string) bool {
	cachedKeys := make([]string, 0, currencyProbe)
	for _, rec := range cached {
		if len(cachedKeys) == currencyProbe {
			break
		}
		cachedKeys = append(cachedKeys, rec.Key())
	}
	liveKeys := make([]string, 0, currencyProbe)
	for _, title := range titles {
		if len(liveKeys) == currencyProbe {
			break
		}
		liveKeys = append(liveKeys, slug.Normalize(title))
	}
	return slices.Equal(cachedKeys, liveKeys)
}

// regenerate produces one record per scraped title in discovery order. Titles
// whose slug already exists in the cache reuse the cached record verbatim and
// cost no provider call; the rest are resolved in batches. Override disables
// reuse entirely.
func (r *Reconciler) regenerate(ctx context.Context, titles []string, cached []Record) ([]Record, int) {
	cachedByKey := make(map[string]Record, len(cached))
	for _, rec := range cached {
		key := rec.Key()
		if _, exists := cachedByKey[key]; !exists {
			cachedByKey[key] = rec
		}
	}

	records := make([]Record, len(titles))
	var pendingIdx []int
	var pendingTitles []string
	reused := 0

	for i, title := range titles {
		if !r.override {
			if rec, ok := cachedByKey[slug.Normalize(title)]; ok {
				records[i] = rec
				reused++
				continue
			}
		}
		pendingIdx = append(pendingIdx, i)
		pendingTitles = append(pendingTitles, title)
	}

	if len(pendingTitles) > 0 {
		resolved := r.resolver.ResolveBatch(ctx, pendingTitles, 0)
		for j, idx := range pendingIdx {
			records[idx] = resolved[j]
		}
	}

	r.logger.Info("regenerated records",
		logging.Int("total", len(records)),
		logging.Int("reused", reused),
		logging.Int("resolved", len(pendingTitles)))

	return records, reused
}

// mergeDateAdded restores the original date-added timestamp for records that
// persisted across runs. Identity is the provider id; unresolved records are
// never merge-matched, each occurrence keeps its own timestamp.
func mergeDateAdded(fresh []Record, cached []Record) []Record {
	byID := make(map[int64]Record, len(cached))
	for _, rec := range cached {
		if rec.Resolved() {
			if _, exists := byID[rec.ID]; !exists {
				byID[rec.ID] = rec
			}
		}
	}
	for i, rec := range fresh {
		if !rec.Resolved() {
			continue
		}
		if prior, ok := byID[rec.ID]; ok {
			fresh[i].DateAdded = prior.DateAdded
		}
	}
	return fresh
}
