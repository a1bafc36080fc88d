// Package goquery implements HTML cleanup, text rendering, and page-region
// selection for tab pages using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabrip"
)

// Ensure Sanitizer implements tabrip.Sanitizer at compile time.
var _ tabrip.Sanitizer = (*Sanitizer)(nil)

// Attributes that only carry visual styling. Styling is irrelevant once
// the markup is re-rendered as plain text.
var presentationAttrs = []string{
	"class", "style", "align", "bgcolor", "border", "color",
	"face", "size", "width", "height",
}

// Sanitizer strips presentation attributes and fixes malformed nesting
// before conversion.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize parses the markup, removes every presentation attribute,
// unwraps code elements that directly contain a preformatted block, and
// serializes the result back to normalized, indented markup. Sanitize is
// idempotent.
func (s *Sanitizer) Sanitize(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", tabrip.Errorf(tabrip.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", tabrip.Errorf(tabrip.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, attr := range presentationAttrs {
			sel.RemoveAttr(attr)
		}
	})

	// A pre nested inside inline-code styling degrades text rendering.
	// Unwrap repeatedly in case code wrappers are themselves nested.
	for {
		wrapped := doc.Find("code > pre")
		if wrapped.Length() == 0 {
			break
		}
		wrapped.Unwrap()
	}

	return renderIndented(doc.Find("body").Contents().Nodes), nil
}
