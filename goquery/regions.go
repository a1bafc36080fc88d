package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabrip"
)

// Ensure Regions implements tabrip.RegionLocator at compile time.
var _ tabrip.RegionLocator = (*Regions)(nil)

// Default candidate selectors for the two page regions, most specific
// first. Semantic paths are preferred; the trailing entries mirror the
// catalog's structural layout so a markup change degrades gracefully
// instead of silently matching the wrong region.
var (
	defaultTitleSelectors = []string{
		"main article section header",
		"article header",
		"header h1",
		"h1",
	}
	defaultBodySelectors = []string{
		"main article section article div",
		"article section article div",
		"main pre",
		"pre",
	}
)

// Regions locates the heading and tab-body regions in a rendered tab page
// using ordered candidate CSS selectors. The candidate lists are the one
// place to update when the catalog's markup changes.
type Regions struct {
	titleSelectors []string
	bodySelectors  []string
}

// RegionsOption configures a Regions locator.
type RegionsOption func(*Regions)

// WithTitleSelectors overrides the heading-region candidates.
func WithTitleSelectors(selectors ...string) RegionsOption {
	return func(r *Regions) {
		r.titleSelectors = selectors
	}
}

// WithBodySelectors overrides the tab-body candidates.
func WithBodySelectors(selectors ...string) RegionsOption {
	return func(r *Regions) {
		r.bodySelectors = selectors
	}
}

// NewRegions creates a Regions locator with the default candidates.
func NewRegions(opts ...RegionsOption) *Regions {
	r := &Regions{
		titleSelectors: defaultTitleSelectors,
		bodySelectors:  defaultBodySelectors,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Locate returns the page's heading and tab-body regions, or ENOTFOUND if
// either region is missing.
func (r *Regions) Locate(rawHTML string) (*tabrip.TabContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, tabrip.Errorf(tabrip.EINVALID, "failed to parse HTML: %v", err)
	}

	title := firstMatch(doc, r.titleSelectors)
	if title == nil {
		return nil, tabrip.Errorf(tabrip.ENOTFOUND, "title region not found")
	}

	body := firstMatch(doc, r.bodySelectors)
	if body == nil {
		return nil, tabrip.Errorf(tabrip.ENOTFOUND, "tab body region not found")
	}

	titleHTML, err := goquery.OuterHtml(title)
	if err != nil {
		return nil, err
	}
	bodyHTML, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, err
	}

	return &tabrip.TabContent{
		Title:     strings.TrimSpace(title.Text()),
		TitleHTML: titleHTML,
		BodyHTML:  bodyHTML,
	}, nil
}

func firstMatch(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, selector := range selectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return sel.First()
		}
	}
	return nil
}
