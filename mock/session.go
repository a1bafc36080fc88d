// Package mock provides mock implementations of the tabrip interfaces.
// Methods with a nil function field are no-ops returning zero values.
package mock

import (
	"context"

	"github.com/fwojciec/tabrip"
)

var _ tabrip.Session = (*Session)(nil)

// Session is a mock implementation of tabrip.Session.
type Session struct {
	NavigateFn      func(ctx context.Context, url string) error
	WaitForFn       func(ctx context.Context, selector string) error
	ClickFn         func(ctx context.Context, selector string) error
	ClickMatchingFn func(ctx context.Context, selector, pattern string) error
	InputFn         func(ctx context.Context, selector, text string) error
	PressEnterFn    func(ctx context.Context, selector string) error
	ScrollToEndFn   func(ctx context.Context) error
	HasCookieFn     func(ctx context.Context, name string) (bool, error)
	HTMLFn          func(ctx context.Context) (string, error)
	TitleFn         func(ctx context.Context) (string, error)
	CloseFn         func() error
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	if s.NavigateFn == nil {
		return nil
	}
	return s.NavigateFn(ctx, url)
}

func (s *Session) WaitFor(ctx context.Context, selector string) error {
	if s.WaitForFn == nil {
		return nil
	}
	return s.WaitForFn(ctx, selector)
}

func (s *Session) Click(ctx context.Context, selector string) error {
	if s.ClickFn == nil {
		return nil
	}
	return s.ClickFn(ctx, selector)
}

func (s *Session) ClickMatching(ctx context.Context, selector, pattern string) error {
	if s.ClickMatchingFn == nil {
		return nil
	}
	return s.ClickMatchingFn(ctx, selector, pattern)
}

func (s *Session) Input(ctx context.Context, selector, text string) error {
	if s.InputFn == nil {
		return nil
	}
	return s.InputFn(ctx, selector, text)
}

func (s *Session) PressEnter(ctx context.Context, selector string) error {
	if s.PressEnterFn == nil {
		return nil
	}
	return s.PressEnterFn(ctx, selector)
}

func (s *Session) ScrollToEnd(ctx context.Context) error {
	if s.ScrollToEndFn == nil {
		return nil
	}
	return s.ScrollToEndFn(ctx)
}

func (s *Session) HasCookie(ctx context.Context, name string) (bool, error) {
	if s.HasCookieFn == nil {
		return false, nil
	}
	return s.HasCookieFn(ctx, name)
}

func (s *Session) HTML(ctx context.Context) (string, error) {
	if s.HTMLFn == nil {
		return "", nil
	}
	return s.HTMLFn(ctx)
}

func (s *Session) Title(ctx context.Context) (string, error) {
	if s.TitleFn == nil {
		return "", nil
	}
	return s.TitleFn(ctx)
}

func (s *Session) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

var _ tabrip.Browser = (*Browser)(nil)

// Browser is a mock implementation of tabrip.Browser.
type Browser struct {
	NewSessionFn func(ctx context.Context) (tabrip.Session, error)
	CloseFn      func() error
}

func (b *Browser) NewSession(ctx context.Context) (tabrip.Session, error) {
	if b.NewSessionFn == nil {
		return &Session{}, nil
	}
	return b.NewSessionFn(ctx)
}

func (b *Browser) Close() error {
	if b.CloseFn == nil {
		return nil
	}
	return b.CloseFn()
}
