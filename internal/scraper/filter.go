package scraper

import (
	"time"

	"github.com/venturecast/venturecast/internal/types"
)

// FilterByDate retains posts whose publication timestamp falls inside
// [start, end], inclusive on both bounds. Comparison is done on
// zone-stripped timestamps; input order is preserved.
func FilterByDate(posts []*types.Post, start, end time.Time) []*types.Post {
	start = types.StripZone(start)
	end = types.StripZone(end)

	var filtered []*types.Post
	for _, post := range posts {
		at := types.StripZone(post.PublishedAt)
		if at.Before(start) || at.After(end) {
			continue
		}
		filtered = append(filtered, post)
	}
	return filtered
}
