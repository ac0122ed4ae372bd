package scraper

import (
	"context"
	"log/slog"
	"time"

	"github.com/venturecast/venturecast/internal/config"
	"github.com/venturecast/venturecast/internal/pipeline"
	"github.com/venturecast/venturecast/internal/types"
)

// Fetcher retrieves the raw document behind a source's entry URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Extractor turns a raw document into post records using a source's
// selectors.
type Extractor interface {
	Extract(body []byte, src config.SourceConfig) []*types.Post
}

// Scraper runs the content aggregation pipeline: per-source
// fetch/extract/filter with retries, fanned out across sources.
type Scraper struct {
	cfg       *config.Config
	fetcher   Fetcher
	extractor Extractor
	pipeline  *pipeline.Pipeline
	logger    *slog.Logger
	stats     *Stats

	// sleep is the backoff clock; replaced in tests.
	sleep func(time.Duration)
}

// New creates a Scraper.
func New(cfg *config.Config, fetcher Fetcher, extractor Extractor, pipe *pipeline.Pipeline, logger *slog.Logger) *Scraper {
	return &Scraper{
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: extractor,
		pipeline:  pipe,
		logger:    logger.With("component", "scraper"),
		stats:     &Stats{},
		sleep:     time.Sleep,
	}
}

// Stats returns the run statistics counters.
func (s *Scraper) Stats() *Stats {
	return s.stats
}

// ScrapeSource runs fetch -> extract -> filter for one source as a
// single unit, retrying on any failure with linearly increasing backoff
// (retry_delay * attempt). It returns either the source's full filtered
// post list or, once attempts are exhausted, a *types.SourceScrapeError —
// never a partial result.
func (s *Scraper) ScrapeSource(ctx context.Context, src config.SourceConfig, start, end time.Time) ([]*types.Post, error) {
	maxAttempts := s.cfg.Scraper.MaxRetries
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		s.stats.Attempts.Add(1)

		posts, err := s.scrapeOnce(ctx, src, start, end)
		if err == nil {
			return posts, nil
		}
		lastErr = err

		if attempt < maxAttempts {
			delay := s.cfg.Scraper.RetryDelay * time.Duration(attempt)
			s.logger.Warn("scrape attempt failed, retrying",
				"source", src.Name,
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"delay", delay,
				"error", err,
			)
			s.sleep(delay)
		}
	}

	return nil, &types.SourceScrapeError{
		Source:   src.Name,
		Attempts: maxAttempts,
		Err:      lastErr,
	}
}

// scrapeOnce performs a single fetch/extract/filter pass.
func (s *Scraper) scrapeOnce(ctx context.Context, src config.SourceConfig, start, end time.Time) ([]*types.Post, error) {
	body, err := s.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}
	s.stats.BytesDownloaded.Add(int64(len(body)))

	extracted := s.extractor.Extract(body, src)
	s.stats.PostsExtracted.Add(int64(len(extracted)))

	posts := extracted
	if s.pipeline != nil && s.pipeline.Len() > 0 {
		posts = make([]*types.Post, 0, len(extracted))
		for _, p := range extracted {
			processed, err := s.pipeline.Process(p)
			if err != nil {
				// Per-element anomalies are drops, not source failures.
				s.stats.PostsDropped.Add(1)
				s.logger.Warn("pipeline dropped post", "source", src.Name, "title", p.Title, "error", err)
				continue
			}
			if processed == nil {
				s.stats.PostsDropped.Add(1)
				continue
			}
			posts = append(posts, processed)
		}
	}

	filtered := FilterByDate(posts, start, end)
	s.stats.PostsKept.Add(int64(len(filtered)))
	return filtered, nil
}

// sourceResult is the write-once result slot for a single source.
type sourceResult struct {
	source string
	posts  []*types.Post
	err    error
}

// ScrapeAll runs ScrapeSource for every registered source, bounded to
// the configured concurrency. Results are drained in completion order;
// a failing source contributes zero posts and is recorded, not fatal.
// The run fails with *types.AggregateScrapeError only when the
// successful union is empty and at least one source failed. An empty
// source list yields an empty result with no error.
func (s *Scraper) ScrapeAll(ctx context.Context, start, end time.Time) ([]*types.Post, error) {
	sources := s.cfg.Sources
	if len(sources) == 0 {
		return nil, nil
	}

	s.stats.StartTime = time.Now()
	s.logger.Info("scraping sources",
		"sources", len(sources),
		"concurrency", s.cfg.Scraper.Concurrency,
		"start", start.Format("2006-01-02"),
		"end", end.Format("2006-01-02"),
	)

	results := make(chan sourceResult, len(sources))
	sem := make(chan struct{}, s.cfg.Scraper.Concurrency)

	for _, src := range sources {
		go func(src config.SourceConfig) {
			sem <- struct{}{}
			defer func() { <-sem }()

			posts, err := s.ScrapeSource(ctx, src, start, end)
			results <- sourceResult{source: src.Name, posts: posts, err: err}
		}(src)
	}

	var all []*types.Post
	var failures []types.SourceFailure

	for range sources {
		r := <-results
		if r.err != nil {
			s.stats.SourcesFailed.Add(1)
			failures = append(failures, types.SourceFailure{Source: r.source, Err: r.err})
			s.logger.Warn("source failed", "source", r.source, "error", r.err)
			continue
		}
		s.stats.SourcesSucceeded.Add(1)
		all = append(all, r.posts...)
		s.logger.Info("source scraped", "source", r.source, "posts", len(r.posts))
	}

	if len(all) == 0 && len(failures) > 0 {
		return nil, &types.AggregateScrapeError{Failures: failures}
	}

	s.logger.Info("scrape complete", "stats", s.stats.Snapshot())
	return all, nil
}

// DateRange computes the scrape window for a number of weeks back from
// now: (now - weeks, now).
func DateRange(weeks int) (time.Time, time.Time) {
	end := time.Now()
	start := end.AddDate(0, 0, -7*weeks)
	return start, end
}
