package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tabrip"
	"golang.org/x/net/html"
)

// Ensure TextRenderer implements tabrip.TextRenderer at compile time.
var _ tabrip.TextRenderer = (*TextRenderer)(nil)

// Elements whose text content never belongs in rendered output.
var skipElements = map[string]bool{
	"head": true, "iframe": true, "noscript": true, "script": true,
	"style": true, "template": true,
}

// Elements that end a line of text.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true,
	"hr": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "tr": true,
	"ul": true,
}

// TextRenderer converts markup to plain text. Non-ASCII characters pass
// through verbatim, hyperlink targets are dropped (link text is kept),
// and each source line break stays a single line break.
type TextRenderer struct{}

// NewTextRenderer creates a new TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render converts markup to plain text and applies the cleanup pass.
func (r *TextRenderer) Render(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", tabrip.Errorf(tabrip.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", tabrip.Errorf(tabrip.EINVALID, "failed to parse HTML: %v", err)
	}

	var sb strings.Builder
	for _, n := range doc.Find("body").Contents().Nodes {
		writeText(&sb, n)
	}

	return CleanText(sb.String()), nil
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
	case html.ElementNode:
		if skipElements[n.Data] {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(sb, c)
		}
		if blockElements[n.Data] && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteString("\n")
		}
	}
}

// CleanText removes a known conversion artifact: a line indented by
// exactly four spaces loses them. Lines with any other indentation are
// left alone, so applying CleanText twice yields the same text as once.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "    ") && !strings.HasPrefix(line, "     ") {
			lines[i] = line[4:]
		}
	}
	return strings.Join(lines, "\n")
}
