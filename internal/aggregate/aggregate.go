package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/venturecast/venturecast/internal/types"
)

// Render sorts, groups, and renders a deduplicated post set into one
// markdown document. Posts are sorted newest first (stable, so input
// order breaks ties), grouped by source in first-appearance order, and
// written with a header carrying the total count and the covered date
// range. Empty input yields an empty document, not an error.
func Render(posts []*types.Post) string {
	if len(posts) == 0 {
		return ""
	}

	sorted := make([]*types.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})

	// Group by source, preserving first-appearance order among groups
	// and each post's relative order within its group.
	var order []string
	groups := make(map[string][]*types.Post)
	for _, post := range sorted {
		if _, ok := groups[post.Source]; !ok {
			order = append(order, post.Source)
		}
		groups[post.Source] = append(groups[post.Source], post)
	}

	earliest := sorted[len(sorted)-1].PublishedAt
	latest := sorted[0].PublishedAt

	var b strings.Builder
	b.WriteString("# VC Blog Posts Collection\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Total Posts:** %d\n\n", len(sorted))
	fmt.Fprintf(&b, "**Date Range:** %s to %s\n\n",
		earliest.Format("2006-01-02"), latest.Format("2006-01-02"))
	b.WriteString("---\n")

	for _, source := range order {
		sourcePosts := groups[source]
		fmt.Fprintf(&b, "\n## %s (%d posts)\n", source, len(sourcePosts))

		for _, post := range sourcePosts {
			fmt.Fprintf(&b, "\n### %s\n", post.Title)
			fmt.Fprintf(&b, "**Date:** %s\n", post.PublishedAt.Format("2006-01-02"))
			if post.URL != "" {
				fmt.Fprintf(&b, "**URL:** %s\n", post.URL)
			}
			fmt.Fprintf(&b, "\n%s\n\n---\n", post.Content)
		}
	}

	return b.String()
}
