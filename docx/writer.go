// Package docx implements the word-processor emitter. It builds a minimal
// OOXML package directly: a zip archive whose word/document.xml part is
// assembled with etree. No docx library is involved, which keeps the
// section, margin, and font handling exact.
package docx

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/tabrip"
)

// Ensure Writer implements tabrip.DocxWriter at compile time.
var _ tabrip.DocxWriter = (*Writer)(nil)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Letter page in twentieths of a point, with half-inch margins.
const (
	pageWidth  = "12240"
	pageHeight = "15840"
	margin     = "720"
)

// Font styling for the two paragraphs. Sizes are half-points.
const (
	headingFont = "Times New Roman"
	headingSize = "28" // 14pt
	bodyFont    = "Courier New"
	bodySize    = "16" // 8pt
	textColor   = "000000"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// Writer saves tab documents in word-processor layout: one continuous
// section with half-inch margins, a serif heading paragraph, and a
// fixed-width body paragraph.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write builds the document and saves it to destPath, overwriting any
// existing file. Returns an error if destPath is unwritable.
func (w *Writer) Write(title, body, destPath string) error {
	f, err := os.Create(destPath)
	if err != nil {
		return tabrip.Errorf(tabrip.EINVALID, "creating %s: %v", destPath, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := []struct {
		name    string
		content func() (string, error)
	}{
		{"[Content_Types].xml", staticPart(contentTypesXML)},
		{"_rels/.rels", staticPart(relsXML)},
		{"word/document.xml", func() (string, error) { return documentXML(title, body) }},
	}
	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("creating part %s: %w", part.name, err)
		}
		content, err := part.content()
		if err != nil {
			return err
		}
		if _, err := pw.Write([]byte(content)); err != nil {
			return fmt.Errorf("writing part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", destPath, err)
	}
	return f.Close()
}

func staticPart(s string) func() (string, error) {
	return func() (string, error) { return s, nil }
}

// documentXML assembles the word/document.xml part.
func documentXML(title, body string) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wordNS)
	wbody := root.CreateElement("w:body")

	appendParagraph(wbody, title, headingFont, headingSize)
	appendParagraph(wbody, body, bodyFont, bodySize)

	sectPr := wbody.CreateElement("w:sectPr")
	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", pageWidth)
	pgSz.CreateAttr("w:h", pageHeight)
	pgMar := sectPr.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", margin)
	pgMar.CreateAttr("w:right", margin)
	pgMar.CreateAttr("w:bottom", margin)
	pgMar.CreateAttr("w:left", margin)
	pgMar.CreateAttr("w:header", margin)
	pgMar.CreateAttr("w:footer", margin)
	pgMar.CreateAttr("w:gutter", "0")

	return doc.WriteToString()
}

// appendParagraph adds one paragraph with single line spacing and no
// indentation. Line breaks in the text become explicit breaks, one run
// per line.
func appendParagraph(body *etree.Element, text, font, size string) {
	p := body.CreateElement("w:p")

	pPr := p.CreateElement("w:pPr")
	spacing := pPr.CreateElement("w:spacing")
	spacing.CreateAttr("w:after", "0")
	spacing.CreateAttr("w:line", "240")
	spacing.CreateAttr("w:lineRule", "auto")
	ind := pPr.CreateElement("w:ind")
	ind.CreateAttr("w:left", "0")
	ind.CreateAttr("w:firstLine", "0")

	for i, line := range strings.Split(text, "\n") {
		r := p.CreateElement("w:r")

		rPr := r.CreateElement("w:rPr")
		fonts := rPr.CreateElement("w:rFonts")
		fonts.CreateAttr("w:ascii", font)
		fonts.CreateAttr("w:hAnsi", font)
		fonts.CreateAttr("w:cs", font)
		color := rPr.CreateElement("w:color")
		color.CreateAttr("w:val", textColor)
		sz := rPr.CreateElement("w:sz")
		sz.CreateAttr("w:val", size)
		szCs := rPr.CreateElement("w:szCs")
		szCs.CreateAttr("w:val", size)

		if i > 0 {
			r.CreateElement("w:br")
		}
		t := r.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(line)
	}
}
