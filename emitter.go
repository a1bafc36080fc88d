package tabrip

import "context"

// PDFConverter renders markup to a paginated PDF document on disk.
// Implementations typically drive an external converter executable.
// An existing file at destPath is overwritten.
type PDFConverter interface {
	Convert(ctx context.Context, html string, destPath string) error
}

// DocxWriter builds a word-processor document from plain text: a heading
// paragraph followed by a fixed-width body paragraph. An existing file at
// destPath is overwritten.
type DocxWriter interface {
	Write(title, body string, destPath string) error
}
