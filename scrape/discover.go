package scrape

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/tabrip"
	"github.com/fwojciec/tabrip/bloom"
)

// defaultLinkWait bounds waiting for anchors to render on the playlist
// page before concluding it is empty.
const defaultLinkWait = 10 * time.Second

// Discoverer collects tab references from a playlist page.
type Discoverer struct {
	Links  tabrip.LinkSelector
	Seen   *bloom.Filter
	Logger *slog.Logger

	// LinkWait bounds waiting for links to appear on the playlist page.
	LinkWait time.Duration
}

// Discover navigates to the playlist and returns its tab references in
// document order, with repeat references removed. A playlist with no
// links yields an empty slice, not an error.
func (d *Discoverer) Discover(ctx context.Context, session tabrip.Session, playlistURL string) ([]string, error) {
	if err := session.Navigate(ctx, playlistURL); err != nil {
		return nil, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, d.linkWait())
	defer cancel()
	if err := session.WaitFor(waitCtx, "a"); err != nil {
		if isWaitTimeout(err) {
			d.logger().Info("playlist has no links", slog.String("url", playlistURL))
			return []string{}, nil
		}
		return nil, err
	}

	html, err := session.HTML(ctx)
	if err != nil {
		return nil, err
	}

	links, err := d.Links.TabLinks(html)
	if err != nil {
		return nil, err
	}

	seen := d.Seen
	if seen == nil {
		seen = bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFalsePositiveRate)
	}
	unique := make([]string, 0, len(links))
	for _, link := range links {
		if seen.Seen(link) {
			continue
		}
		unique = append(unique, link)
	}

	d.logger().Info("discovered tabs",
		slog.String("url", playlistURL),
		slog.Int("links", len(links)),
		slog.Int("unique", len(unique)))
	return unique, nil
}

// isWaitTimeout reports whether an error means the wait window elapsed
// rather than the session breaking.
func isWaitTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || tabrip.ErrorCode(err) == tabrip.ETIMEOUT
}

func (d *Discoverer) linkWait() time.Duration {
	if d.LinkWait > 0 {
		return d.LinkWait
	}
	return defaultLinkWait
}

func (d *Discoverer) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
