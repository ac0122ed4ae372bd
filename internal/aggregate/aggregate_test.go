package aggregate

import (
	"strings"
	"testing"
	"time"

	"github.com/venturecast/venturecast/internal/types"
)

func datedPost(title, source string, published time.Time) *types.Post {
	return &types.Post{
		Title:       title,
		PublishedAt: published,
		Content:     "content of " + title,
		Source:      source,
		URL:         "https://example.com/" + strings.ReplaceAll(strings.ToLower(title), " ", "-"),
	}
}

func TestRenderEmpty(t *testing.T) {
	if doc := Render(nil); doc != "" {
		t.Fatalf("empty input must yield empty document, got %d bytes", len(doc))
	}
	if doc := Render([]*types.Post{}); doc != "" {
		t.Fatalf("empty slice must yield empty document, got %d bytes", len(doc))
	}
}

func TestRenderGroupingAndMetadata(t *testing.T) {
	posts := []*types.Post{
		datedPost("Newest From A", "A", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)),
		datedPost("Only From B", "B", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
		datedPost("Older From A", "A", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)),
	}

	doc := Render(posts)

	if !strings.Contains(doc, "**Total Posts:** 3") {
		t.Errorf("missing total count:\n%s", doc)
	}
	if !strings.Contains(doc, "**Date Range:** 2026-01-05 to 2026-01-15") {
		t.Errorf("missing date range:\n%s", doc)
	}
	if !strings.Contains(doc, "## A (2 posts)") {
		t.Errorf("missing group header for A:\n%s", doc)
	}
	if !strings.Contains(doc, "## B (1 posts)") {
		t.Errorf("missing group header for B:\n%s", doc)
	}

	// Source A holds the newest post, so its group comes first.
	if strings.Index(doc, "## A") > strings.Index(doc, "## B") {
		t.Error("group A should precede group B")
	}

	// Within group A, newest first.
	if strings.Index(doc, "Newest From A") > strings.Index(doc, "Older From A") {
		t.Error("posts within a group should be newest first")
	}
}

func TestRenderOmitsEmptyURL(t *testing.T) {
	p := datedPost("No Link Here", "A", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	p.URL = ""

	doc := Render([]*types.Post{p})
	if strings.Contains(doc, "**URL:**") {
		t.Error("URL line should be omitted for posts without a link")
	}
	if !strings.Contains(doc, "### No Link Here") {
		t.Errorf("post title missing:\n%s", doc)
	}
}

func TestRenderStableTieOrder(t *testing.T) {
	when := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	posts := []*types.Post{
		datedPost("First In Input", "A", when),
		datedPost("Second In Input", "A", when),
	}

	doc := Render(posts)
	if strings.Index(doc, "First In Input") > strings.Index(doc, "Second In Input") {
		t.Error("equal timestamps should preserve input order")
	}
}
