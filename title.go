package tabrip

import "strings"

// SafeTitle derives a filesystem-safe file name from a raw page title.
// Surrounding whitespace is trimmed and path separators become
// underscores, so the result is always usable as a single path element.
func SafeTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.ReplaceAll(title, "/", "_")
	title = strings.ReplaceAll(title, "\\", "_")
	return title
}
