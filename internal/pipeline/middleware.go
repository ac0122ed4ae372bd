package pipeline

import (
	"strings"
	"unicode"

	"github.com/venturecast/venturecast/internal/types"
)

// --- Built-in Middleware ---

// TrimMiddleware trims whitespace from all string fields.
type TrimMiddleware struct{}

func (m *TrimMiddleware) Name() string { return "trim" }

func (m *TrimMiddleware) Process(post *types.Post) (*types.Post, error) {
	post.Title = strings.TrimSpace(post.Title)
	post.Content = strings.TrimSpace(post.Content)
	post.Excerpt = strings.TrimSpace(post.Excerpt)
	post.URL = strings.TrimSpace(post.URL)
	return post, nil
}

// RequireTitleMiddleware drops posts whose title is empty after trimming.
type RequireTitleMiddleware struct{}

func (m *RequireTitleMiddleware) Name() string { return "require_title" }

func (m *RequireTitleMiddleware) Process(post *types.Post) (*types.Post, error) {
	if post.Title == "" {
		return nil, nil // Drop post
	}
	return post, nil
}

// DefaultExcerptLen is the target excerpt length in runes.
const DefaultExcerptLen = 200

// ExcerptMiddleware populates an empty Excerpt from the leading content,
// cut back to a word boundary.
type ExcerptMiddleware struct {
	// MaxLen overrides DefaultExcerptLen when > 0.
	MaxLen int
}

func (m *ExcerptMiddleware) Name() string { return "excerpt" }

func (m *ExcerptMiddleware) Process(post *types.Post) (*types.Post, error) {
	if post.Excerpt != "" || post.Content == "" {
		return post, nil
	}

	maxLen := m.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultExcerptLen
	}

	runes := []rune(post.Content)
	if len(runes) <= maxLen {
		post.Excerpt = post.Content
		return post, nil
	}

	cut := maxLen
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		cut = maxLen
	}
	post.Excerpt = strings.TrimSpace(string(runes[:cut])) + "…"
	return post, nil
}
