package tabrip

import "context"

// Browser opens fresh browsing contexts. Implementations may use browser
// automation engines; each session is isolated so a failed login attempt
// carries no state into the next one.
type Browser interface {
	// NewSession opens a fresh, isolated browsing context.
	NewSession(ctx context.Context) (Session, error)

	// Close releases the underlying engine.
	// Must be called when the Browser is no longer needed.
	Close() error
}

// Session is an opaque handle to one cookie-bearing browsing context.
// It exposes the narrow set of capabilities the pipeline needs; any
// automation engine satisfying this contract is substitutable.
//
// All blocking operations honor context cancellation and deadlines;
// callers bound waits by passing a context with a timeout.
type Session interface {
	// Navigate loads the URL and waits for the page load event.
	Navigate(ctx context.Context, url string) error

	// WaitFor blocks until an element matching the CSS selector appears.
	WaitFor(ctx context.Context, selector string) error

	// Click activates the first element matching the selector.
	Click(ctx context.Context, selector string) error

	// ClickMatching activates the first element matching the selector
	// whose text matches the given pattern.
	ClickMatching(ctx context.Context, selector, pattern string) error

	// Input types text into the first element matching the selector.
	Input(ctx context.Context, selector, text string) error

	// PressEnter submits the element matching the selector.
	PressEnter(ctx context.Context, selector string) error

	// ScrollToEnd signals end-of-page to force lazy content to render.
	ScrollToEnd(ctx context.Context) error

	// HasCookie reports whether a cookie with the given name is set.
	HasCookie(ctx context.Context, name string) (bool, error)

	// HTML returns the rendered markup of the current page.
	HTML(ctx context.Context) (string, error)

	// Title returns the current page's displayed title.
	Title(ctx context.Context) (string, error)

	// Close releases the browsing context.
	Close() error
}
