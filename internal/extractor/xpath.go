package extractor

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/venturecast/venturecast/internal/config"
	"github.com/venturecast/venturecast/internal/types"
)

// extractXPath walks article elements matched by XPath expressions.
// Title, date, and content selectors are evaluated relative to each
// article node, so they are usually written as ".//h2" style paths.
func (e *Extractor) extractXPath(body []byte, src config.SourceConfig) []*types.Post {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		e.logger.Warn("unparsable document", "source", src.Name, "error", err)
		return nil
	}

	articles, err := htmlquery.QueryAll(doc, src.ArticleSelector)
	if err != nil {
		e.logger.Warn("invalid xpath", "source", src.Name, "selector", src.ArticleSelector, "error", err)
		return nil
	}

	base, err := url.Parse(src.URL)
	if err != nil {
		base = nil
	}

	var posts []*types.Post

	for _, article := range articles {
		title := strings.TrimSpace(innerText(article, src.TitleSelector))
		if title == "" {
			continue
		}

		dateNode := queryOne(article, src.DateSelector)
		if dateNode == nil {
			continue
		}
		dateStr := htmlquery.SelectAttr(dateNode, "datetime")
		if dateStr == "" {
			dateStr = strings.TrimSpace(htmlquery.InnerText(dateNode))
		}
		published, err := parsePostDate(dateStr)
		if err != nil {
			e.logger.Debug("skipping element with unparsable date",
				"source", src.Name, "date", dateStr)
			continue
		}

		content := strings.TrimSpace(innerText(article, src.ContentSelector))

		link := ""
		if a := queryOne(article, ".//a[@href]"); a != nil {
			link = resolveLink(base, htmlquery.SelectAttr(a, "href"))
		}

		posts = append(posts, &types.Post{
			Title:       title,
			PublishedAt: published,
			Content:     content,
			Source:      src.Name,
			URL:         link,
		})
	}

	return posts
}

// queryOne evaluates expr relative to node, swallowing bad expressions.
func queryOne(node *html.Node, expr string) *html.Node {
	if expr == "" {
		return nil
	}
	found, err := htmlquery.Query(node, expr)
	if err != nil {
		return nil
	}
	return found
}

// innerText returns the text of the first node matching expr, or "".
func innerText(node *html.Node, expr string) string {
	found := queryOne(node, expr)
	if found == nil {
		return ""
	}
	return htmlquery.InnerText(found)
}
