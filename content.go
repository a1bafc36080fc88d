package tabrip

// TabContent holds the two page regions a tab document is built from.
// It exists only inside one extraction call.
type TabContent struct {
	// Title is the displayed tab title, as text.
	Title string

	// TitleHTML is the markup of the heading region.
	TitleHTML string

	// BodyHTML is the markup of the tab-body region.
	BodyHTML string
}

// RegionLocator finds the heading and tab-body regions in a rendered page.
// Keeping the lookup behind one interface means a catalog markup change
// requires a single localized update.
type RegionLocator interface {
	// Locate returns the page's regions, or ENOTFOUND if either region
	// is missing.
	Locate(html string) (*TabContent, error)
}

// Sanitizer normalizes markup before conversion: presentation attributes
// removed, malformed nesting fixed. Sanitizing already-sanitized markup
// returns an equivalent result.
type Sanitizer interface {
	Sanitize(html string) (string, error)
}

// TextRenderer converts sanitized markup to plain text suitable for a
// word-processor body.
type TextRenderer interface {
	Render(html string) (string, error)
}
