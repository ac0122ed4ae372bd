package scraper

import (
	"sync/atomic"
	"time"
)

// Stats tracks scrape-run statistics.
type Stats struct {
	SourcesSucceeded atomic.Int64
	SourcesFailed    atomic.Int64
	PostsExtracted   atomic.Int64
	PostsKept        atomic.Int64
	PostsDropped     atomic.Int64
	BytesDownloaded  atomic.Int64
	Attempts         atomic.Int64
	StartTime        time.Time
}

// Snapshot returns a copy of stats safe for structured logging.
func (s *Stats) Snapshot() map[string]any {
	out := map[string]any{
		"sources_succeeded": s.SourcesSucceeded.Load(),
		"sources_failed":    s.SourcesFailed.Load(),
		"posts_extracted":   s.PostsExtracted.Load(),
		"posts_kept":        s.PostsKept.Load(),
		"posts_dropped":     s.PostsDropped.Load(),
		"bytes_downloaded":  s.BytesDownloaded.Load(),
		"attempts":          s.Attempts.Load(),
	}
	if !s.StartTime.IsZero() {
		out["elapsed"] = time.Since(s.StartTime).String()
	}
	return out
}
