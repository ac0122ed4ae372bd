package aggregate

import (
	"github.com/venturecast/venturecast/internal/types"
)

// DefaultThreshold is the similarity ratio above which two posts are
// treated as near-duplicates.
const DefaultThreshold = 0.85

// contentCompareLen bounds how much body text feeds the similarity
// ratio. Blog bodies run to thousands of characters; their openings are
// distinctive enough.
const contentCompareLen = 500

// Deduplicate removes exact and near-duplicate posts, keeping the
// first-seen copy of each. A post is an exact duplicate when its
// non-empty URL was already kept, and a near-duplicate when its title or
// leading content scores strictly above threshold against any
// already-kept post. The earlier-kept post always wins; there is no
// merging. Cost is O(n^2) over the post set, which stays in the low
// hundreds per run.
func Deduplicate(posts []*types.Post, threshold float64) []*types.Post {
	if len(posts) == 0 {
		return []*types.Post{}
	}

	kept := make([]*types.Post, 0, len(posts))
	seenURLs := make(map[string]struct{})

	for _, post := range posts {
		if post.URL != "" {
			if _, seen := seenURLs[post.URL]; seen {
				continue
			}
		}

		duplicate := false
		for _, existing := range kept {
			if isNearDuplicate(post, existing, threshold) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		kept = append(kept, post)
		if post.URL != "" {
			seenURLs[post.URL] = struct{}{}
		}
	}

	return kept
}

// isNearDuplicate judges two posts similar enough to be the same content
// in different locations. Title similarity alone is enough; content
// similarity is consulted only when both posts carry content.
func isNearDuplicate(a, b *types.Post, threshold float64) bool {
	if Ratio(a.Title, b.Title) > threshold {
		return true
	}
	if a.Content != "" && b.Content != "" {
		if Ratio(leading(a.Content), leading(b.Content)) > threshold {
			return true
		}
	}
	return false
}

// leading returns the first contentCompareLen runes of s.
func leading(s string) string {
	runes := []rune(s)
	if len(runes) <= contentCompareLen {
		return s
	}
	return string(runes[:contentCompareLen])
}
