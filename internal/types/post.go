package types

import (
	"time"
)

// Post represents a single blog post extracted from a configured source.
// Posts are created by the extractor and treated as immutable once they
// leave the scrape pipeline.
type Post struct {
	// Title is the post's display title. Always non-empty.
	Title string

	// PublishedAt is the post's publication timestamp with any zone
	// offset stripped (wall clock preserved).
	PublishedAt time.Time

	// Content is the extracted plain-text body. May be empty when the
	// source markup has no content block.
	Content string

	// Source is the display name of the originating source.
	Source string

	// URL is the resolved link to the original post. May be empty when
	// no link is discoverable in the article markup.
	URL string

	// Excerpt is an optional short summary, populated by the excerpt
	// middleware.
	Excerpt string
}

// Same reports identity equality: two posts are the same record iff
// title, source, and URL all match. This is distinct from the
// near-duplicate relation used by the aggregate package, which is a
// similarity judgment rather than an identity one.
func (p *Post) Same(other *Post) bool {
	if other == nil {
		return false
	}
	return p.Title == other.Title && p.Source == other.Source && p.URL == other.URL
}

// StripZone drops the zone offset from a timestamp while preserving its
// wall-clock fields. Range comparisons are done on stripped timestamps
// so that sources reporting offsets compare against naive bounds.
func StripZone(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), time.UTC)
}
