package mock

import "github.com/fwojciec/tabrip"

var _ tabrip.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of tabrip.LinkSelector.
type LinkSelector struct {
	TabLinksFn func(html string) ([]string, error)
}

func (s *LinkSelector) TabLinks(html string) ([]string, error) {
	if s.TabLinksFn == nil {
		return nil, nil
	}
	return s.TabLinksFn(html)
}

var _ tabrip.RegionLocator = (*RegionLocator)(nil)

// RegionLocator is a mock implementation of tabrip.RegionLocator.
type RegionLocator struct {
	LocateFn func(html string) (*tabrip.TabContent, error)
}

func (l *RegionLocator) Locate(html string) (*tabrip.TabContent, error) {
	if l.LocateFn == nil {
		return &tabrip.TabContent{}, nil
	}
	return l.LocateFn(html)
}

var _ tabrip.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of tabrip.Sanitizer. With a nil
// function field it returns its input unchanged.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (s *Sanitizer) Sanitize(html string) (string, error) {
	if s.SanitizeFn == nil {
		return html, nil
	}
	return s.SanitizeFn(html)
}

var _ tabrip.TextRenderer = (*TextRenderer)(nil)

// TextRenderer is a mock implementation of tabrip.TextRenderer. With a
// nil function field it returns its input unchanged.
type TextRenderer struct {
	RenderFn func(html string) (string, error)
}

func (r *TextRenderer) Render(html string) (string, error) {
	if r.RenderFn == nil {
		return html, nil
	}
	return r.RenderFn(html)
}
