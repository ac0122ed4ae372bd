package config

// DefaultSources returns the built-in registry of VC blog sources.
// Each descriptor names the entry page and the structural selectors used
// to pull posts out of it. A config file with a non-empty sources list
// replaces this registry entirely.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{
			Name:            "a16z",
			URL:             "https://a16z.com/blog/",
			Engine:          "css",
			ArticleSelector: "article.post",
			TitleSelector:   "h2.post-title",
			DateSelector:    "time",
			ContentSelector: "div.post-content",
		},
		{
			Name:            "Sequoia Capital",
			URL:             "https://www.sequoiacap.com/articles/",
			Engine:          "css",
			ArticleSelector: "article",
			TitleSelector:   "h3",
			DateSelector:    "time",
			ContentSelector: "div.article-content",
		},
		{
			Name:            "First Round Review",
			URL:             "https://review.firstround.com/latest",
			Engine:          "css",
			ArticleSelector: "div.article-item",
			TitleSelector:   "h2",
			DateSelector:    "span.date",
			ContentSelector: "div.content",
		},
		{
			Name:            "AVC (Fred Wilson)",
			URL:             "https://avc.com/",
			Engine:          "css",
			ArticleSelector: "article",
			TitleSelector:   "h1.entry-title",
			DateSelector:    "time.entry-date",
			ContentSelector: "div.entry-content",
		},
		{
			Name:            "Tomasz Tunguz",
			URL:             "https://tomtunguz.com/",
			Engine:          "css",
			ArticleSelector: "article",
			TitleSelector:   "h1",
			DateSelector:    "time",
			ContentSelector: "div.post-content",
		},
	}
}
