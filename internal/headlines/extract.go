// Package headlines extracts story titles from front-page markup and
// renders them as a numbered list.
package headlines

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// primaryPattern matches the title anchor exactly as the front page renders
// it: an anchor immediately inside the titleline span.
var primaryPattern = regexp.MustCompile(`<span class="titleline"><a[^>]*>([^<]+)</a>`)

// Extract returns all story titles found in body, in document order.
// When the primary pattern finds nothing it reports fellBack=true and
// returns whatever the looser document-based pass finds.
func Extract(body []byte) (titles []string, fellBack bool) {
	titles = extractPrimary(body)
	if len(titles) > 0 {
		return titles, false
	}
	return extractLoose(body), true
}

func extractPrimary(body []byte) []string {
	matches := primaryPattern.FindAllSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}
	titles := make([]string, 0, len(matches))
	for _, m := range matches {
		titles = append(titles, string(m[1]))
	}
	return titles
}

// extractLoose tolerates markup between the titleline marker and the anchor
// text: it walks the parsed document and takes, per titleline node, the
// first text run of the first anchor.
func extractLoose(body []byte) []string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var titles []string
	doc.Find(".titleline").Each(func(_ int, sel *goquery.Selection) {
		anchor := sel.Find("a").First()
		if anchor.Length() == 0 {
			return
		}
		if text := firstTextRun(anchor.Get(0)); text != "" {
			titles = append(titles, text)
		}
	})
	return titles
}

// firstTextRun returns the first non-blank text node under n, depth first.
func firstTextRun(n *html.Node) string {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode && strings.TrimSpace(child.Data) != "" {
			return child.Data
		}
		if child.Type == html.ElementNode {
			if text := firstTextRun(child); text != "" {
				return text
			}
		}
	}
	return ""
}
