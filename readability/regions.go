// Package readability provides a fallback region locator built on
// go-readability's main-content extraction. It is consulted when the
// selector-based locator finds nothing, e.g. after a catalog markup change.
package readability

import (
	"html"
	"strings"

	"github.com/fwojciec/tabrip"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Regions implements tabrip.RegionLocator at compile time.
var _ tabrip.RegionLocator = (*Regions)(nil)

// Regions locates page regions via readability extraction.
type Regions struct{}

// NewRegions creates a new Regions locator.
func NewRegions() *Regions {
	return &Regions{}
}

// Locate extracts the page's main content and title. The heading region is
// synthesized from the extracted title since readability discards the
// original heading markup.
func (r *Regions) Locate(rawHTML string) (*tabrip.TabContent, error) {
	if rawHTML == "" {
		return nil, tabrip.Errorf(tabrip.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(article.Title)
	content := strings.TrimSpace(article.Content)
	if title == "" || content == "" {
		return nil, tabrip.Errorf(tabrip.ENOTFOUND, "no readable content found")
	}

	return &tabrip.TabContent{
		Title:     title,
		TitleHTML: "<header><h1>" + html.EscapeString(title) + "</h1></header>",
		BodyHTML:  content,
	}, nil
}
