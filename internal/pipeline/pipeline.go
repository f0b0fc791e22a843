package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"

	"reelfeed/internal/catalog"
	"reelfeed/internal/config"
	"reelfeed/internal/feed"
	"reelfeed/internal/logging"
	"reelfeed/internal/resolve"
	"reelfeed/internal/runlog"
	"reelfeed/internal/tmdb"
	"reelfeed/internal/watchlist"
)

// ErrAlreadyRunning indicates another run holds the pipeline lock.
var ErrAlreadyRunning = errors.New("another reelfeed run is already in progress")

// Pipeline owns the wiring for one scheduled run.
type Pipeline struct {
	reconciler *catalog.Reconciler
	classifier *catalog.Classifier
	unknowns   *catalog.Store
	feed       *feed.Writer
	feedPath   string
	history    *runlog.Store
	lock       *flock.Flock
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// New wires a pipeline from configuration. The force flag is combined with the
// configured override so either source triggers a full refresh.
func New(cfg *config.Config, logger *slog.Logger, force bool, opts ...Option) (*Pipeline, error) {
	fetcher, err := watchlist.NewHTTPFetcher(
		cfg.Watchlist.URL,
		cfg.Watchlist.Selector,
		cfg.Watchlist.Attribute,
		time.Duration(cfg.Watchlist.RequestTimeout)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("configure fetcher: %w", err)
	}
	scraper := watchlist.NewScraper(fetcher, logger)

	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
	if err != nil {
		return nil, fmt.Errorf("configure tmdb client: %w", err)
	}
	resolver := resolve.New(client, logger)

	cacheStore := catalog.NewStore(cfg.Cache.Path, logger)
	override := force || cfg.Cache.ForceRefresh
	reconciler := catalog.NewReconciler(cacheStore, scraper, resolver, logger,
		catalog.WithOverride(override),
		catalog.WithFreshWindow(time.Duration(cfg.Cache.FreshMinutes)*time.Minute),
	)

	var history *runlog.Store
	if cfg.History.Enabled {
		history, err = runlog.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open run history: %w", err)
		}
	}

	p := &Pipeline{
		reconciler: reconciler,
		classifier: catalog.NewClassifier(resolver, logger),
		unknowns:   catalog.NewStore(cfg.Output.UnknownsPath, logger),
		feed:       feed.NewWriter(cfg.Output.FeedTitle, cfg.Output.FeedLink, cfg.Output.FeedDescription),
		feedPath:   cfg.Output.FeedPath,
		history:    history,
		lock:       flock.New(cfg.Cache.Path + ".lock"),
		logger:     logging.NewComponentLogger(logger, "pipeline"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Close releases pipeline resources.
func (p *Pipeline) Close() error {
	return p.history.Close()
}

// Run executes one full cycle. The run lock is held end to end; a concurrent
// invocation returns ErrAlreadyRunning instead of racing the artifacts.
func (p *Pipeline) Run(ctx context.Context) error {
	locked, err := p.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return ErrAlreadyRunning
	}
	defer p.lock.Unlock()

	start := p.now()

	outcome, err := p.reconciler.Run(ctx)
	if err != nil {
		return err
	}

	unknowns := p.classifier.Classify(ctx, outcome.Records)
	snap := catalog.Snapshot{Generated: p.now().UnixMilli(), Data: unknowns}
	if err := p.unknowns.SavePretty(snap); err != nil {
		return fmt.Errorf("write unknowns: %w", err)
	}

	if err := p.feed.WriteFile(p.feedPath, outcome.Records, p.now()); err != nil {
		return err
	}

	unresolved := 0
	for _, rec := range outcome.Records {
		if !rec.Resolved() {
			unresolved++
		}
	}

	summary := runlog.Summary{
		StartedAt:   start,
		Duration:    p.now().Sub(start),
		Scraped:     outcome.Scraped,
		Reused:      outcome.Reused,
		Looked:      outcome.Looked,
		Unresolved:  unresolved,
		Regenerated: outcome.Regenerated,
	}
	if err := p.history.Record(ctx, summary); err != nil {
		// History is diagnostic; a failed insert should not fail the run.
		p.logger.Warn("recording run summary failed", logging.Error(err))
	}

	p.logger.Info("run complete",
		logging.Int("records", len(outcome.Records)),
		logging.Int("unknowns", len(unknowns)),
		logging.Int("unresolved", unresolved),
		logging.Bool("regenerated", outcome.Regenerated),
		logging.Duration("duration", summary.Duration))

	return nil
}
