package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unitdoc"
)

// Ensure ContentExtractor implements unitdoc.ContentExtractor at compile time.
var _ unitdoc.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor reduces a rendered unit page to its content area.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// ExtractContent returns the inner HTML of the page's .content element with
// scripts, buttons and diagram sections removed. Diagram headings are
// removed together with their sections.
func (e *ContentExtractor) ExtractContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", unitdoc.Errorf(unitdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	content := doc.Find(".content").First()
	if content.Length() == 0 {
		return "", unitdoc.Errorf(unitdoc.EINVALID, "page has no content area")
	}

	content.Find(".mermaid").Each(func(_ int, sel *goquery.Selection) {
		section := sel.ParentsFiltered(".section").First()
		section.Prev().Filter("h3").Remove()
		section.Remove()
	})
	content.Find("script, button").Remove()

	out, err := content.Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
