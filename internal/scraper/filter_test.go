package scraper

import (
	"testing"
	"time"

	"github.com/venturecast/venturecast/internal/types"
)

func dated(title string, at time.Time) *types.Post {
	return &types.Post{Title: title, PublishedAt: at, Source: "src"}
}

func TestFilterByDateWindow(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	posts := []*types.Post{
		dated("before", time.Date(2026, 1, 9, 23, 59, 59, 0, time.UTC)),
		dated("on start", start),
		dated("inside", time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)),
		dated("on end", end),
		dated("after", time.Date(2026, 1, 20, 0, 0, 1, 0, time.UTC)),
	}

	got := FilterByDate(posts, start, end)

	want := []string{"on start", "inside", "on end"}
	if len(got) != len(want) {
		t.Fatalf("kept %d posts, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestFilterByDateIgnoresZones(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	// 2026-01-21 05:00 +10:00 is Jan 20 19:00 UTC as an instant, which
	// sits inside the window. The comparison uses the wall clock, so the
	// post counts as Jan 21 and is dropped.
	zoned := time.FixedZone("AEST", 10*3600)
	late := dated("wall clock after", time.Date(2026, 1, 21, 5, 0, 0, 0, zoned))

	// 2026-01-09 22:00 -05:00 is Jan 10 03:00 UTC as an instant, but its
	// wall clock is still Jan 9, so it is dropped too.
	est := time.FixedZone("EST", -5*3600)
	early := dated("wall clock before", time.Date(2026, 1, 9, 22, 0, 0, 0, est))

	// Same wall clock as the start boundary, different zone: kept.
	kept := dated("wall clock on start", time.Date(2026, 1, 10, 0, 0, 0, 0, est))

	got := FilterByDate([]*types.Post{late, early, kept}, start, end)
	if len(got) != 1 || got[0].Title != "wall clock on start" {
		t.Fatalf("expected only the boundary post, got %d posts", len(got))
	}
}

func TestFilterByDateEmpty(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)

	if got := FilterByDate(nil, start, end); len(got) != 0 {
		t.Errorf("nil input should yield empty output, got %d", len(got))
	}
}
