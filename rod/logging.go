package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tabrip"
)

// Ensure the logging decorators implement the wrapped interfaces.
var (
	_ tabrip.Session = (*LoggingSession)(nil)
	_ tabrip.Browser = (*LoggingBrowser)(nil)
)

// LoggingBrowser wraps a Browser so every session it opens carries debug
// logging.
type LoggingBrowser struct {
	next   tabrip.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next tabrip.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// NewSession opens a session on the wrapped browser and decorates it.
func (b *LoggingBrowser) NewSession(ctx context.Context) (tabrip.Session, error) {
	session, err := b.next.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	return NewLoggingSession(session, b.logger), nil
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	return b.next.Close()
}

// LoggingSession wraps a Session with debug logging for navigation and
// element waits.
type LoggingSession struct {
	next   tabrip.Session
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next tabrip.Session, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// Navigate logs the URL being loaded and delegates to the wrapped session.
func (s *LoggingSession) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

// WaitFor logs the selector being waited on and delegates.
func (s *LoggingSession) WaitFor(ctx context.Context, selector string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("wait",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WaitFor(ctx, selector)
}

// Click delegates to the wrapped session.
func (s *LoggingSession) Click(ctx context.Context, selector string) error {
	return s.next.Click(ctx, selector)
}

// ClickMatching delegates to the wrapped session.
func (s *LoggingSession) ClickMatching(ctx context.Context, selector, pattern string) error {
	return s.next.ClickMatching(ctx, selector, pattern)
}

// Input delegates to the wrapped session.
func (s *LoggingSession) Input(ctx context.Context, selector, text string) error {
	return s.next.Input(ctx, selector, text)
}

// PressEnter delegates to the wrapped session.
func (s *LoggingSession) PressEnter(ctx context.Context, selector string) error {
	return s.next.PressEnter(ctx, selector)
}

// ScrollToEnd delegates to the wrapped session.
func (s *LoggingSession) ScrollToEnd(ctx context.Context) error {
	return s.next.ScrollToEnd(ctx)
}

// HasCookie delegates to the wrapped session.
func (s *LoggingSession) HasCookie(ctx context.Context, name string) (bool, error) {
	return s.next.HasCookie(ctx, name)
}

// HTML delegates to the wrapped session.
func (s *LoggingSession) HTML(ctx context.Context) (string, error) {
	return s.next.HTML(ctx)
}

// Title delegates to the wrapped session.
func (s *LoggingSession) Title(ctx context.Context) (string, error) {
	return s.next.Title(ctx)
}

// Close delegates to the wrapped session.
func (s *LoggingSession) Close() error {
	return s.next.Close()
}
