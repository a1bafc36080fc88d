package scrape

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/tabrip"
)

// defaultBodyWait bounds waiting for the tab body to render. Tab pages
// build their content client-side, so the initial HTML arrives empty.
const defaultBodyWait = 10 * time.Second

// defaultSettleDelay is the pause between the body appearing and the
// page being sampled, giving lazy content a moment to render.
const defaultSettleDelay = 500 * time.Millisecond

// defaultWaitSelector matches the element that signals the tab body has
// rendered.
const defaultWaitSelector = "article"

// Extractor turns one tab page into one output document.
type Extractor struct {
	Regions   tabrip.RegionLocator
	Fallback  tabrip.RegionLocator
	Sanitizer tabrip.Sanitizer
	Renderer  tabrip.TextRenderer
	PDF       tabrip.PDFConverter
	Docx      tabrip.DocxWriter
	Logger    *slog.Logger

	// BodyWait bounds waiting for the tab body to render.
	BodyWait time.Duration

	// SettleDelay overrides the pause after the wait selector appears.
	// Negative disables the pause.
	SettleDelay time.Duration

	// WaitSelector overrides the element the extractor waits for.
	WaitSelector string
}

// Extract navigates to a tab page, locates its regions, and emits a
// document in the requested format into dir. The filename derives from
// the tab title with path separators replaced.
func (e *Extractor) Extract(ctx context.Context, session tabrip.Session, url, dir string, format tabrip.OutputFormat) error {
	if err := session.Navigate(ctx, url); err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(ctx, e.bodyWait())
	defer cancel()
	if err := session.WaitFor(waitCtx, e.waitSelector()); err != nil {
		e.logFailure(ctx, session, url, "tab body never rendered")
		return tabrip.Errorf(tabrip.ETIMEOUT, "tab body never rendered for %s", url)
	}

	if delay := e.settleDelay(); delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	if err := session.ScrollToEnd(ctx); err != nil {
		return err
	}

	html, err := session.HTML(ctx)
	if err != nil {
		return err
	}

	content, err := e.locate(html)
	if err != nil {
		e.logFailure(ctx, session, url, tabrip.ErrorMessage(err))
		return err
	}

	safe := tabrip.SafeTitle(content.Title)
	if safe == "" {
		safe = tabrip.SafeTitle(url)
	}

	switch format {
	case tabrip.FormatPDF:
		return e.emitPDF(ctx, content, filepath.Join(dir, safe+".pdf"))
	case tabrip.FormatDocx:
		return e.emitDocx(content, filepath.Join(dir, safe+".docx"))
	}
	return tabrip.Errorf(tabrip.EINVALID, "unknown output format %q", format)
}

// locate tries the primary locator and falls back to the secondary one,
// so a catalog layout change degrades to approximate extraction instead
// of total failure.
func (e *Extractor) locate(html string) (*tabrip.TabContent, error) {
	content, err := e.Regions.Locate(html)
	if err == nil {
		return content, nil
	}
	if e.Fallback == nil {
		return nil, err
	}
	e.logger().Debug("primary region lookup failed, trying fallback", slog.String("reason", tabrip.ErrorMessage(err)))
	return e.Fallback.Locate(html)
}

func (e *Extractor) emitPDF(ctx context.Context, content *tabrip.TabContent, destPath string) error {
	if err := e.PDF.Convert(ctx, content.TitleHTML+content.BodyHTML, destPath); err != nil {
		return err
	}
	e.logger().Info("saved tab", slog.String("path", destPath))
	return nil
}

func (e *Extractor) emitDocx(content *tabrip.TabContent, destPath string) error {
	sanitized, err := e.Sanitizer.Sanitize(content.BodyHTML)
	if err != nil {
		return err
	}
	body, err := e.Renderer.Render(sanitized)
	if err != nil {
		return err
	}
	if err := e.Docx.Write(content.Title, body, destPath); err != nil {
		return err
	}
	e.logger().Info("saved tab", slog.String("path", destPath))
	return nil
}

// logFailure records which tab failed using the page's own displayed
// title, so the user can find it in the playlist.
func (e *Extractor) logFailure(ctx context.Context, session tabrip.Session, url, reason string) {
	title, err := session.Title(ctx)
	if err != nil || title == "" {
		title = url
	}
	e.logger().Warn("tab failed", slog.String("tab", displayTitle(title)), slog.String("reason", reason))
}

// displayTitle strips the catalog's site-name suffix from a page title.
func displayTitle(pageTitle string) string {
	name, _, _ := strings.Cut(pageTitle, " | ")
	return strings.TrimSpace(name)
}

func (e *Extractor) bodyWait() time.Duration {
	if e.BodyWait > 0 {
		return e.BodyWait
	}
	return defaultBodyWait
}

func (e *Extractor) settleDelay() time.Duration {
	if e.SettleDelay != 0 {
		return e.SettleDelay
	}
	return defaultSettleDelay
}

func (e *Extractor) waitSelector() string {
	if e.WaitSelector != "" {
		return e.WaitSelector
	}
	return defaultWaitSelector
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
