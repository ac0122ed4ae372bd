package extractor

import (
	"bytes"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/venturecast/venturecast/internal/config"
	"github.com/venturecast/venturecast/internal/types"
)

// Extractor turns a raw source page into structured post records using
// the source's selectors. Malformed article elements are skipped, never
// surfaced as errors: one broken element on a page must not cost the
// whole source.
type Extractor struct {
	logger *slog.Logger
}

// New creates an Extractor.
func New(logger *slog.Logger) *Extractor {
	return &Extractor{
		logger: logger.With("component", "extractor"),
	}
}

// Extract parses body with the source's selector engine and returns the
// posts it finds, in document order. Document order is not guaranteed to
// be chronological.
func (e *Extractor) Extract(body []byte, src config.SourceConfig) []*types.Post {
	switch src.Engine {
	case "xpath":
		return e.extractXPath(body, src)
	default:
		return e.extractCSS(body, src)
	}
}

// extractCSS walks article elements matched by goquery CSS selectors.
func (e *Extractor) extractCSS(body []byte, src config.SourceConfig) []*types.Post {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		e.logger.Warn("unparsable document", "source", src.Name, "error", err)
		return nil
	}

	base, err := url.Parse(src.URL)
	if err != nil {
		base = nil
	}

	var posts []*types.Post

	doc.Find(src.ArticleSelector).Each(func(i int, article *goquery.Selection) {
		title := strings.TrimSpace(article.Find(src.TitleSelector).First().Text())
		if title == "" {
			return
		}

		dateEl := article.Find(src.DateSelector).First()
		if dateEl.Length() == 0 {
			return
		}
		dateStr, ok := dateEl.Attr("datetime")
		if !ok || dateStr == "" {
			dateStr = strings.TrimSpace(dateEl.Text())
		}
		published, err := parsePostDate(dateStr)
		if err != nil {
			e.logger.Debug("skipping element with unparsable date",
				"source", src.Name, "date", dateStr)
			return
		}

		content := strings.TrimSpace(article.Find(src.ContentSelector).First().Text())

		link := ""
		if href, ok := article.Find("a[href]").First().Attr("href"); ok {
			link = resolveLink(base, href)
		}

		posts = append(posts, &types.Post{
			Title:       title,
			PublishedAt: published,
			Content:     content,
			Source:      src.Name,
			URL:         link,
		})
	})

	return posts
}

// resolveLink resolves href against the source's entry URL. An href that
// cannot be parsed resolves to the empty string.
func resolveLink(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return parsed.String()
	}
	return base.ResolveReference(parsed).String()
}
