package scrape

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/tabrip"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Result holds the outcome of one batch run. Every discovered tab is
// accounted for: Emitted plus the failed entries equals the number of
// discovered references.
type Result struct {
	// Emitted counts documents written to disk.
	Emitted int

	// Failed lists the URLs of tabs that produced no document.
	Failed []string
}

// Pipeline runs a complete batch: login, discovery, and per-tab
// extraction. A single pipeline serves both output formats; the format in
// Config selects the emitter.
type Pipeline struct {
	Auth       *Authenticator
	Discoverer *Discoverer
	Extractor  *Extractor
	Config     *tabrip.Config
	Logger     *slog.Logger

	// Limiter paces page navigation during the batch.
	Limiter *rate.Limiter
}

// Run executes the batch. A tab that fails is recorded and the batch
// moves on; only context cancellation or a broken session aborts the run.
// The partial Result is returned alongside any abort error.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	logger := p.logger().With(slog.String("run_id", uuid.NewString()))

	session, err := p.Auth.Login(ctx, p.Config.LoginURL, p.Config.MaxLoginAttempts)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	urls, err := p.Discoverer.Discover(ctx, session, p.Config.PlaylistURL)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for i, url := range urls {
		if p.Limiter != nil {
			if err := p.Limiter.Wait(ctx); err != nil {
				return result, err
			}
		}
		logger.Info("processing tab",
			slog.Int("n", i+1),
			slog.Int("total", len(urls)),
			slog.String("url", url))

		if err := p.Extractor.Extract(ctx, session, url, p.Config.DownloadDir, p.Config.Format); err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			logger.Warn("tab not saved", slog.String("url", url), slog.String("reason", tabrip.ErrorMessage(err)))
			result.Failed = append(result.Failed, url)
			continue
		}
		result.Emitted++
	}

	logger.Info("batch finished",
		slog.Int("emitted", result.Emitted),
		slog.Int("failed", len(result.Failed)))
	for _, url := range result.Failed {
		logger.Warn("failed tab", slog.String("url", url))
	}
	return result, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
