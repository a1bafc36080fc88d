package tabrip

import "strings"

// OutputFormat selects which document emitter a run uses.
type OutputFormat string

// Supported output formats.
const (
	FormatPDF  OutputFormat = "pdf"
	FormatDocx OutputFormat = "docx"
)

// ParseFormat parses a user-supplied format string.
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDocx:
		return FormatDocx, nil
	}
	return "", Errorf(EINVALID, "unknown output format %q (expected pdf or docx)", s)
}

// Config holds the settings for one run. It is loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	// LoginURL is the catalog's login page.
	LoginURL string

	// PlaylistURL is the playlist page listing tab links to process.
	PlaylistURL string

	// DownloadDir is where output documents (and browser downloads) land.
	DownloadDir string

	// WkhtmltopdfPath points at the external HTML-to-PDF converter binary.
	// Required only when Format is FormatPDF.
	WkhtmltopdfPath string

	// Format selects the document emitter.
	Format OutputFormat

	// MaxLoginAttempts bounds the interactive login retry loop.
	// Zero means retry until the user gives up (Ctrl-C).
	MaxLoginAttempts int

	// RequestsPerSecond paces page navigation during the batch.
	RequestsPerSecond float64
}

// Validate returns an EINVALID error enumerating every missing or invalid
// field. A valid Config is required before any network activity starts.
func (c *Config) Validate() error {
	var missing []string
	if c.LoginURL == "" {
		missing = append(missing, "login URL")
	}
	if c.PlaylistURL == "" {
		missing = append(missing, "playlist URL")
	}
	if c.DownloadDir == "" {
		missing = append(missing, "download directory")
	}
	switch c.Format {
	case FormatPDF:
		if c.WkhtmltopdfPath == "" {
			missing = append(missing, "wkhtmltopdf executable path")
		}
	case FormatDocx:
	default:
		return Errorf(EINVALID, "unknown output format %q (expected pdf or docx)", c.Format)
	}
	if len(missing) > 0 {
		return Errorf(EINVALID, "missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.MaxLoginAttempts < 0 {
		return Errorf(EINVALID, "max login attempts must not be negative")
	}
	if c.RequestsPerSecond < 0 {
		return Errorf(EINVALID, "requests per second must not be negative")
	}
	return nil
}
