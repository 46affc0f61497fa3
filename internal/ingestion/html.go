package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxExtractedLinks caps the link list carried in metadata.
const maxExtractedLinks = 50

// ExtractLinks collects the absolute http(s) links from a page, deduplicated
// in document order. Parse failures yield an empty list.
func ExtractLinks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return true
		}
		if !seen[href] {
			seen[href] = true
			links = append(links, href)
		}
		return len(links) < maxExtractedLinks
	})
	return links
}
