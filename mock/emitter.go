package mock

import (
	"context"

	"github.com/fwojciec/tabrip"
)

var _ tabrip.PDFConverter = (*PDFConverter)(nil)

// PDFConverter is a mock implementation of tabrip.PDFConverter.
type PDFConverter struct {
	ConvertFn func(ctx context.Context, html string, destPath string) error
}

func (c *PDFConverter) Convert(ctx context.Context, html string, destPath string) error {
	if c.ConvertFn == nil {
		return nil
	}
	return c.ConvertFn(ctx, html, destPath)
}

var _ tabrip.DocxWriter = (*DocxWriter)(nil)

// DocxWriter is a mock implementation of tabrip.DocxWriter.
type DocxWriter struct {
	WriteFn func(title, body string, destPath string) error
}

func (w *DocxWriter) Write(title, body string, destPath string) error {
	if w.WriteFn == nil {
		return nil
	}
	return w.WriteFn(title, body, destPath)
}
