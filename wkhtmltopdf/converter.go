// Package wkhtmltopdf implements the print-layout emitter by driving the
// external wkhtmltopdf executable.
package wkhtmltopdf

import (
	"context"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/fwojciec/tabrip"
)

// Ensure Converter implements tabrip.PDFConverter at compile time.
var _ tabrip.PDFConverter = (*Converter)(nil)

// Converter renders markup to a paginated PDF through wkhtmltopdf.
type Converter struct{}

// NewConverter creates a Converter bound to the executable at execPath.
// The path comes from configuration; it is not resolved from $PATH.
//
// The wrapper library holds the executable path in package-global state,
// so the path of the most recently constructed Converter applies to all
// instances. One Converter per process.
func NewConverter(execPath string) *Converter {
	wkhtmltopdf.SetPath(execPath)
	return &Converter{}
}

// Convert renders the markup to a Letter-sized PDF at destPath, UTF-8
// encoded. An existing file at destPath is overwritten. An unreachable
// executable or a failed conversion is reported as an error, never a
// crash.
func (c *Converter) Convert(ctx context.Context, html string, destPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(html) == "" {
		return tabrip.Errorf(tabrip.EINVALID, "empty HTML input")
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return tabrip.Errorf(tabrip.EINTERNAL, "pdf converter unavailable: %v", err)
	}
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeLetter)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
	page.Encoding.Set("utf-8")
	pdfg.AddPage(page)

	if err := pdfg.CreateContext(ctx); err != nil {
		return tabrip.Errorf(tabrip.EINTERNAL, "pdf conversion failed: %v", err)
	}
	if err := pdfg.WriteFile(destPath); err != nil {
		return tabrip.Errorf(tabrip.EINTERNAL, "writing %s: %v", destPath, err)
	}
	return nil
}
