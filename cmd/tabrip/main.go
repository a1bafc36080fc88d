package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tabrip"
	"github.com/fwojciec/tabrip/bloom"
	"github.com/fwojciec/tabrip/docx"
	"github.com/fwojciec/tabrip/goquery"
	"github.com/fwojciec/tabrip/readability"
	"github.com/fwojciec/tabrip/rod"
	"github.com/fwojciec/tabrip/scrape"
	"github.com/fwojciec/tabrip/term"
	tabviper "github.com/fwojciec/tabrip/viper"
	"github.com/fwojciec/tabrip/wkhtmltopdf"
	"golang.org/x/time/rate"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, tabrip.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program. The service fields are nil in production
// and replaced with mocks in end-to-end tests.
type Main struct {
	Browser     tabrip.Browser
	Credentials tabrip.CredentialSource
	PDF         tabrip.PDFConverter
	Docx        tabrip.DocxWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tabrip"),
		kong.Description("Saves every tab in an Ultimate Guitar playlist as a PDF or Word document."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, stored, err := tabviper.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.Format != "" {
		format, err := tabrip.ParseFormat(cli.Format)
		if err != nil {
			return err
		}
		cfg.Format = format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(cfg.DownloadDir, 0o755); err != nil {
		return fmt.Errorf("creating download directory: %w", err)
	}

	browser := m.Browser
	if browser == nil {
		b, err := rod.NewBrowser(cfg.DownloadDir)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return err
		}
		browser = b
	}
	browser = rod.NewLoggingBrowser(browser, logger)
	defer browser.Close()

	credentials := m.Credentials
	if credentials == nil {
		if stored != nil {
			credentials = tabrip.StaticSource(*stored)
		} else {
			credentials = term.NewPrompter()
		}
	}

	pdf := m.PDF
	if pdf == nil && cfg.Format == tabrip.FormatPDF {
		pdf = wkhtmltopdf.NewConverter(cfg.WkhtmltopdfPath)
	}
	writer := m.Docx
	if writer == nil {
		writer = docx.NewWriter()
	}

	pipeline := &scrape.Pipeline{
		Auth: &scrape.Authenticator{
			Browser:     browser,
			Credentials: credentials,
			Logger:      logger,
		},
		Discoverer: &scrape.Discoverer{
			Links:  goquery.NewLinks(),
			Seen:   bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFalsePositiveRate),
			Logger: logger,
		},
		Extractor: &scrape.Extractor{
			Regions:   goquery.NewRegions(),
			Fallback:  readability.NewRegions(),
			Sanitizer: goquery.NewSanitizer(),
			Renderer:  goquery.NewTextRenderer(),
			PDF:       pdf,
			Docx:      writer,
			Logger:    logger,
		},
		Config: cfg,
		Logger: logger,
	}
	if cfg.RequestsPerSecond > 0 {
		pipeline.Limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	result, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Saved %d tab(s) to %s\n", result.Emitted, cfg.DownloadDir)
	if len(result.Failed) > 0 {
		fmt.Fprintf(stdout, "Failed to save %d tab(s):\n", len(result.Failed))
		for _, url := range result.Failed {
			fmt.Fprintf(stdout, "  %s\n", url)
		}
	}
	return nil
}
