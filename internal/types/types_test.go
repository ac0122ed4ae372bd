package types

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPostSame(t *testing.T) {
	a := &Post{Title: "T", Source: "S", URL: "u"}
	b := &Post{Title: "T", Source: "S", URL: "u", Content: "different body"}
	if !a.Same(b) {
		t.Error("posts with equal identity fields should be the same")
	}

	c := &Post{Title: "T", Source: "S", URL: "other"}
	if a.Same(c) {
		t.Error("posts with different URLs are not the same")
	}
	if a.Same(nil) {
		t.Error("nil is never the same post")
	}
}

func TestStripZone(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	in := time.Date(2026, 1, 15, 18, 45, 30, 0, est)

	out := StripZone(in)
	if out.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", out.Location())
	}
	want := time.Date(2026, 1, 15, 18, 45, 30, 0, time.UTC)
	if !out.Equal(want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestErrorWrapping(t *testing.T) {
	root := errors.New("boom")

	cases := []error{
		&FetchError{URL: "http://x", StatusCode: 500, Err: root},
		&SourceScrapeError{Source: "s", Attempts: 3, Err: root},
		&ScriptError{Attempts: 2, Err: root},
		&TTSError{Attempts: 1, Err: root},
		&StorageError{Path: "/tmp/x", Err: root},
	}
	for _, err := range cases {
		if !errors.Is(err, root) {
			t.Errorf("%T should unwrap to the root cause", err)
		}
	}
}

func TestAggregateScrapeErrorMessage(t *testing.T) {
	err := &AggregateScrapeError{Failures: []SourceFailure{
		{Source: "a16z", Err: errors.New("timeout")},
		{Source: "avc", Err: errors.New("404")},
	}}
	msg := err.Error()
	for _, want := range []string{"2 sources", "a16z", "avc"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}
