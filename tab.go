package tabrip

import "strings"

// Accepted path patterns denoting a tab-detail page. A playlist link is a
// tab reference only if it matches one of these.
const (
	TabPathPattern     = "tabs.ultimate-guitar.com/tab"
	UserTabPathPattern = "tabs.ultimate-guitar.com/user/tab"
)

// IsTabURL reports whether a URL points at a tab-detail or user-tab-detail
// page.
func IsTabURL(rawURL string) bool {
	return strings.Contains(rawURL, TabPathPattern) ||
		strings.Contains(rawURL, UserTabPathPattern)
}

// LinkSelector extracts tab references from playlist markup.
type LinkSelector interface {
	// TabLinks parses HTML and returns every hyperlink target that is a
	// tab reference, in document order. Non-matching links are excluded.
	TabLinks(html string) ([]string, error)
}
