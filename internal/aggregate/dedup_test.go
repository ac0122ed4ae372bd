package aggregate

import (
	"strings"
	"testing"
	"time"

	"github.com/venturecast/venturecast/internal/types"
)

func post(title, content, url string) *types.Post {
	return &types.Post{
		Title:       title,
		PublishedAt: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Content:     content,
		Source:      "test",
		URL:         url,
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	got := Deduplicate(nil, DefaultThreshold)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d posts", len(got))
	}
}

func TestDeduplicateExactURL(t *testing.T) {
	// Identical URLs collapse regardless of how different the rest is.
	posts := []*types.Post{
		post("Market Update Q1", "markets went up", "https://example.com/p/1"),
		post("Hiring Great Engineers", "completely unrelated body", "https://example.com/p/1"),
	}

	got := Deduplicate(posts, DefaultThreshold)
	if len(got) != 1 {
		t.Fatalf("expected 1 post, got %d", len(got))
	}
	if got[0].Title != "Market Update Q1" {
		t.Errorf("first-seen post should win, got %q", got[0].Title)
	}
}

func TestDeduplicateEmptyURLsNotExactDuplicates(t *testing.T) {
	posts := []*types.Post{
		post("Market Update Q1", "markets went up", ""),
		post("Hiring Great Engineers", "unrelated body text here", ""),
	}

	got := Deduplicate(posts, DefaultThreshold)
	if len(got) != 2 {
		t.Fatalf("posts with empty URLs and distinct content must both survive, got %d", len(got))
	}
}

func TestDeduplicateSimilarTitles(t *testing.T) {
	posts := []*types.Post{
		post("The Future of AI in 2026", "first body", "https://a.example.com/ai"),
		post("The Future of AI in 2026!", "second body entirely different", "https://b.example.com/ai"),
	}

	got := Deduplicate(posts, DefaultThreshold)
	if len(got) != 1 {
		t.Fatalf("near-identical titles should collapse, got %d posts", len(got))
	}
	if got[0].URL != "https://a.example.com/ai" {
		t.Errorf("earlier-kept post should win, got %q", got[0].URL)
	}
}

func TestDeduplicateSimilarContent(t *testing.T) {
	body := strings.Repeat("the venture market shifted dramatically this quarter. ", 12)
	posts := []*types.Post{
		post("Original Take", body, "https://a.example.com/1"),
		post("A Syndicated Repost", body, "https://b.example.com/1"),
	}

	got := Deduplicate(posts, DefaultThreshold)
	if len(got) != 1 {
		t.Fatalf("identical bodies should collapse, got %d posts", len(got))
	}
}

func TestDeduplicateContentIgnoredWhenEitherEmpty(t *testing.T) {
	posts := []*types.Post{
		post("Original Take", "", "https://a.example.com/1"),
		post("A Syndicated Repost", "some body", "https://b.example.com/1"),
	}

	got := Deduplicate(posts, DefaultThreshold)
	if len(got) != 2 {
		t.Fatalf("content similarity requires both bodies non-empty, got %d posts", len(got))
	}
}

func TestDeduplicateBelowThresholdKept(t *testing.T) {
	posts := []*types.Post{
		post("Market Update Q1", "markets went up across the board", "https://a.example.com/1"),
		post("Hiring Great Engineers", "recruiting is a founder's job", "https://b.example.com/2"),
	}

	got := Deduplicate(posts, DefaultThreshold)
	if len(got) != 2 {
		t.Fatalf("dissimilar posts must both be kept, got %d", len(got))
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	posts := []*types.Post{
		post("The Future of AI in 2026", "body one", "https://a.example.com/1"),
		post("The Future of AI in 2026!", "body two", "https://b.example.com/2"),
		post("Hiring Great Engineers", "body three", "https://c.example.com/3"),
		post("Hiring Great Engineers", "body three", "https://c.example.com/3"),
	}

	once := Deduplicate(posts, DefaultThreshold)
	twice := Deduplicate(once, DefaultThreshold)

	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Same(twice[i]) {
			t.Errorf("post %d changed across dedup passes", i)
		}
	}
}

func TestDeduplicateComparesOnlyLeadingContent(t *testing.T) {
	shared := strings.Repeat("identical opening paragraph text. ", 20) // > 500 chars
	posts := []*types.Post{
		post("First Angle", shared+"completely distinct tail one", "https://a.example.com/1"),
		post("Second Angle", shared+"a different ending altogether", "https://b.example.com/2"),
	}

	got := Deduplicate(posts, DefaultThreshold)
	if len(got) != 1 {
		t.Fatalf("posts sharing their first 500 content chars should collapse, got %d", len(got))
	}
}
