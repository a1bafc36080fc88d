package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabrip"
)

// Ensure Links implements tabrip.LinkSelector at compile time.
var _ tabrip.LinkSelector = (*Links)(nil)

// Links extracts tab references from playlist markup.
type Links struct{}

// NewLinks creates a new Links selector.
func NewLinks() *Links {
	return &Links{}
}

// TabLinks parses HTML and returns every hyperlink target pointing at a
// tab-detail or user-tab-detail page, in document order. Playlist order is
// preserved so processing order is reproducible.
func (l *Links) TabLinks(rawHTML string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, tabrip.Errorf(tabrip.EINVALID, "failed to parse HTML: %v", err)
	}

	var urls []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if tabrip.IsTabURL(href) {
			urls = append(urls, href)
		}
	})

	return urls, nil
}
