package rod

import (
	"context"

	"github.com/fwojciec/tabrip"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Session implements tabrip.Session at compile time.
var _ tabrip.Session = (*Session)(nil)

// Session wraps a single browser page. All waits are bounded by the
// caller's context.
type Session struct {
	page *rod.Page
}

// Navigate loads the URL and waits for the page load event.
func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// WaitFor blocks until an element matching the selector appears or the
// context expires.
func (s *Session) WaitFor(ctx context.Context, selector string) error {
	_, err := s.page.Context(ctx).Element(selector)
	return err
}

// Click activates the first element matching the selector.
func (s *Session) Click(ctx context.Context, selector string) error {
	el, err := s.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// ClickMatching activates the first element matching the selector whose
// text matches the pattern.
func (s *Session) ClickMatching(ctx context.Context, selector, pattern string) error {
	el, err := s.page.Context(ctx).ElementR(selector, pattern)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// Input types text into the first element matching the selector.
func (s *Session) Input(ctx context.Context, selector, text string) error {
	el, err := s.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	return el.Input(text)
}

// PressEnter submits the element matching the selector.
func (s *Session) PressEnter(ctx context.Context, selector string) error {
	el, err := s.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	return el.Type(input.Enter)
}

// ScrollToEnd sends an end-of-page key signal to force lazy content to
// materialize.
func (s *Session) ScrollToEnd(ctx context.Context) error {
	return s.page.Context(ctx).Keyboard.Press(input.End)
}

// HasCookie reports whether a cookie with the given name is set in this
// browsing context.
func (s *Session) HasCookie(ctx context.Context, name string) (bool, error) {
	cookies, err := s.page.Context(ctx).Cookies(nil)
	if err != nil {
		return false, err
	}
	for _, c := range cookies {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// HTML returns the rendered markup of the current page.
func (s *Session) HTML(ctx context.Context) (string, error) {
	return s.page.Context(ctx).HTML()
}

// Title returns the current page's displayed title.
func (s *Session) Title(ctx context.Context) (string, error) {
	info, err := s.page.Context(ctx).Info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

// Close releases the browsing context.
func (s *Session) Close() error {
	return s.page.Close()
}
