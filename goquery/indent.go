package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// Elements whose content is whitespace-sensitive and must round-trip
// byte for byte.
var preformatted = map[string]bool{
	"pre": true, "textarea": true, "script": true, "style": true,
}

// renderIndented serializes nodes one element per line with two-space
// indentation. Preformatted elements and elements without element children
// are rendered verbatim, so re-parsing and re-serializing the output
// yields the same string.
func renderIndented(nodes []*html.Node) string {
	var lines []string
	for _, n := range nodes {
		appendLines(&lines, n, 0)
	}
	return strings.Join(lines, "\n")
}

func appendLines(lines *[]string, n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			*lines = append(*lines, indent+html.EscapeString(text))
		}
	case html.ElementNode:
		if preformatted[n.Data] || !hasElementChild(n) {
			var buf strings.Builder
			if err := html.Render(&buf, n); err == nil {
				*lines = append(*lines, indent+buf.String())
			}
			return
		}
		*lines = append(*lines, indent+openTag(n))
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			appendLines(lines, c, depth+1)
		}
		*lines = append(*lines, indent+"</"+n.Data+">")
	}
}

func hasElementChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

func openTag(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	return sb.String()
}
