package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for boundary conditions.
var (
	ErrEmptyDocument = errors.New("aggregate document is empty")
	ErrEmptyScript   = errors.New("script is empty")
)

// FetchError wraps errors that occur while fetching a source page.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s (status %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SourceScrapeError reports that a single source exhausted all of its
// retry attempts. It carries the last underlying cause.
type SourceScrapeError struct {
	Source   string
	Attempts int
	Err      error
}

func (e *SourceScrapeError) Error() string {
	return fmt.Sprintf("failed to scrape %s after %d attempts: %v", e.Source, e.Attempts, e.Err)
}

func (e *SourceScrapeError) Unwrap() error { return e.Err }

// SourceFailure pairs a source name with the error it failed with.
type SourceFailure struct {
	Source string
	Err    error
}

// AggregateScrapeError reports that every configured source failed. It is
// the only error that terminates a scrape run before a document is
// produced.
type AggregateScrapeError struct {
	Failures []SourceFailure
}

func (e *AggregateScrapeError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s: %v", f.Source, f.Err)
	}
	return fmt.Sprintf("all %d sources failed to scrape: %s", len(e.Failures), strings.Join(parts, "; "))
}

// ScriptError wraps failures from the script-generation collaborator.
type ScriptError struct {
	Attempts int
	Err      error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("failed to generate script after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// TTSError wraps failures from the text-to-speech collaborator.
type TTSError struct {
	Attempts int
	Err      error
}

func (e *TTSError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("failed to generate audio after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("tts error: %v", e.Err)
}

func (e *TTSError) Unwrap() error { return e.Err }

// StorageError wraps errors from writing output files.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error (%s): %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
