package scrape_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/tabrip"
	"github.com/fwojciec/tabrip/mock"
	"github.com/fwojciec/tabrip/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	tabURL := "https://tabs.ultimate-guitar.com/tab/artist/song-1"

	t.Run("emits a pdf from both regions", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			HTMLFn: func(ctx context.Context) (string, error) {
				return "<html></html>", nil
			},
		}
		regions := &mock.RegionLocator{
			LocateFn: func(html string) (*tabrip.TabContent, error) {
				return &tabrip.TabContent{
					Title:     "Song One",
					TitleHTML: "<header><h1>Song One</h1></header>",
					BodyHTML:  "<article><pre>e|---</pre></article>",
				}, nil
			},
		}

		var gotHTML, gotDest string
		pdf := &mock.PDFConverter{
			ConvertFn: func(ctx context.Context, html string, destPath string) error {
				gotHTML = html
				gotDest = destPath
				return nil
			},
		}

		e := &scrape.Extractor{Regions: regions, PDF: pdf, SettleDelay: -1}
		err := e.Extract(context.Background(), session, tabURL, "/downloads", tabrip.FormatPDF)

		require.NoError(t, err)
		assert.Equal(t, "<header><h1>Song One</h1></header><article><pre>e|---</pre></article>", gotHTML)
		assert.Equal(t, filepath.Join("/downloads", "Song One.pdf"), gotDest)
	})

	t.Run("emits a docx via sanitize and render", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{}
		regions := &mock.RegionLocator{
			LocateFn: func(html string) (*tabrip.TabContent, error) {
				return &tabrip.TabContent{
					Title:    "Song Two",
					BodyHTML: `<div class="x"><pre>e|---</pre></div>`,
				}, nil
			},
		}
		sanitizer := &mock.Sanitizer{
			SanitizeFn: func(html string) (string, error) {
				return "<div><pre>e|---</pre></div>", nil
			},
		}
		renderer := &mock.TextRenderer{
			RenderFn: func(html string) (string, error) {
				return "e|---\n", nil
			},
		}

		var gotTitle, gotBody, gotDest string
		docx := &mock.DocxWriter{
			WriteFn: func(title, body string, destPath string) error {
				gotTitle, gotBody, gotDest = title, body, destPath
				return nil
			},
		}

		e := &scrape.Extractor{
			Regions:     regions,
			Sanitizer:   sanitizer,
			Renderer:    renderer,
			Docx:        docx,
			SettleDelay: -1,
		}
		err := e.Extract(context.Background(), session, tabURL, "/downloads", tabrip.FormatDocx)

		require.NoError(t, err)
		assert.Equal(t, "Song Two", gotTitle)
		assert.Equal(t, "e|---\n", gotBody)
		assert.Equal(t, filepath.Join("/downloads", "Song Two.docx"), gotDest)
	})

	t.Run("slashes in the title become underscores in the filename", func(t *testing.T) {
		t.Parallel()

		regions := &mock.RegionLocator{
			LocateFn: func(html string) (*tabrip.TabContent, error) {
				return &tabrip.TabContent{Title: "AC/DC - Back In Black"}, nil
			},
		}

		var gotDest string
		pdf := &mock.PDFConverter{
			ConvertFn: func(ctx context.Context, html string, destPath string) error {
				gotDest = destPath
				return nil
			},
		}

		e := &scrape.Extractor{Regions: regions, PDF: pdf, SettleDelay: -1}
		err := e.Extract(context.Background(), &mock.Session{}, tabURL, "out", tabrip.FormatPDF)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join("out", "AC_DC - Back In Black.pdf"), gotDest)
	})

	t.Run("pauses for lazy content by default", func(t *testing.T) {
		t.Parallel()

		regions := &mock.RegionLocator{
			LocateFn: func(html string) (*tabrip.TabContent, error) {
				return &tabrip.TabContent{Title: "Song"}, nil
			},
		}

		e := &scrape.Extractor{Regions: regions, PDF: &mock.PDFConverter{}}

		start := time.Now()
		err := e.Extract(context.Background(), &mock.Session{}, tabURL, "out", tabrip.FormatPDF)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
	})

	t.Run("reports the displayed title when the body never renders", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		session := &mock.Session{
			WaitForFn: func(ctx context.Context, selector string) error {
				<-ctx.Done()
				return ctx.Err()
			},
			TitleFn: func(ctx context.Context) (string, error) {
				return "Song Three | Catalog", nil
			},
		}

		e := &scrape.Extractor{
			Regions:  &mock.RegionLocator{},
			Logger:   logger,
			BodyWait: 20 * time.Millisecond,
		}
		err := e.Extract(context.Background(), session, tabURL, "out", tabrip.FormatPDF)

		require.Error(t, err)
		assert.Equal(t, tabrip.ETIMEOUT, tabrip.ErrorCode(err))
		assert.Contains(t, buf.String(), "Song Three")
		assert.NotContains(t, buf.String(), "Song Three | Catalog")
	})

	t.Run("falls back when the primary locator misses", func(t *testing.T) {
		t.Parallel()

		primary := &mock.RegionLocator{
			LocateFn: func(html string) (*tabrip.TabContent, error) {
				return nil, tabrip.Errorf(tabrip.ENOTFOUND, "no heading region")
			},
		}
		fallback := &mock.RegionLocator{
			LocateFn: func(html string) (*tabrip.TabContent, error) {
				return &tabrip.TabContent{Title: "Rescued", BodyHTML: "<pre>x</pre>"}, nil
			},
		}

		var gotDest string
		pdf := &mock.PDFConverter{
			ConvertFn: func(ctx context.Context, html string, destPath string) error {
				gotDest = destPath
				return nil
			},
		}

		e := &scrape.Extractor{Regions: primary, Fallback: fallback, PDF: pdf, SettleDelay: -1}
		err := e.Extract(context.Background(), &mock.Session{}, tabURL, "out", tabrip.FormatPDF)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join("out", "Rescued.pdf"), gotDest)
	})

	t.Run("locate failure without fallback surfaces the error", func(t *testing.T) {
		t.Parallel()

		regions := &mock.RegionLocator{
			LocateFn: func(html string) (*tabrip.TabContent, error) {
				return nil, tabrip.Errorf(tabrip.ENOTFOUND, "no heading region")
			},
		}

		e := &scrape.Extractor{Regions: regions, SettleDelay: -1}
		err := e.Extract(context.Background(), &mock.Session{}, tabURL, "out", tabrip.FormatPDF)

		require.Error(t, err)
		assert.Equal(t, tabrip.ENOTFOUND, tabrip.ErrorCode(err))
	})
}
