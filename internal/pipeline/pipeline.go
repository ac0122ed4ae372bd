package pipeline

import (
	"log/slog"

	"github.com/venturecast/venturecast/internal/types"
)

// Middleware processes a post and returns the (possibly modified) post.
// Return nil to drop the post from the pipeline.
type Middleware interface {
	// Name returns the middleware's identifier.
	Name() string

	// Process transforms a post. Return nil to drop the post.
	Process(post *types.Post) (*types.Post, error)
}

// Pipeline chains middleware processors together. It runs between
// extraction and range filtering: posts dropped here are silently-dropped
// records, not errors.
type Pipeline struct {
	middlewares []Middleware
	logger      *slog.Logger
}

// New creates a new Pipeline.
func New(logger *slog.Logger) *Pipeline {
	return &Pipeline{
		logger: logger.With("component", "pipeline"),
	}
}

// Use adds a middleware to the pipeline chain.
func (p *Pipeline) Use(mw Middleware) {
	p.middlewares = append(p.middlewares, mw)
	p.logger.Debug("middleware added", "name", mw.Name(), "position", len(p.middlewares))
}

// Process runs the post through all middleware in order. A nil result
// with nil error means the post was dropped.
func (p *Pipeline) Process(post *types.Post) (*types.Post, error) {
	current := post

	for _, mw := range p.middlewares {
		result, err := mw.Process(current)
		if err != nil {
			return nil, err
		}
		if result == nil {
			p.logger.Debug("post dropped", "stage", mw.Name(), "title", post.Title)
			return nil, nil
		}
		current = result
	}

	return current, nil
}

// Len returns the number of middleware in the chain.
func (p *Pipeline) Len() int {
	return len(p.middlewares)
}

// Default returns the pipeline used by the scrape commands: whitespace
// trimming, a title guard, and excerpt population.
func Default(logger *slog.Logger) *Pipeline {
	p := New(logger)
	p.Use(&TrimMiddleware{})
	p.Use(&RequireTitleMiddleware{})
	p.Use(&ExcerptMiddleware{})
	return p
}
