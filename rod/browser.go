// Package rod implements the browsing-session capability using Chrome
// browser automation.
package rod

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/tabrip"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Browser implements tabrip.Browser at compile time.
var _ tabrip.Browser = (*Browser)(nil)

// Browser launches a headless Chrome instance and opens isolated
// incognito sessions on it. Downloads are saved into downloadDir without
// prompting, matching how the catalog serves page-description files.
type Browser struct {
	browser     *rod.Browser
	launcher    *launcher.Launcher
	downloadDir string
}

// NewBrowser launches a headless Chrome browser.
// Close must be called when the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(downloadDir string) (*Browser, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	absDir, err := filepath.Abs(downloadDir)
	if err != nil {
		browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("resolving download directory: %w", err)
	}

	return &Browser{
		browser:     browser,
		launcher:    lnchr,
		downloadDir: absDir,
	}, nil
}

// NewSession opens a fresh incognito browsing context. Each session starts
// with an empty cookie jar so a failed login attempt carries no state into
// the next one.
func (b *Browser) NewSession(ctx context.Context) (tabrip.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	incognito, err := b.browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("creating browsing context: %w", err)
	}

	err = proto.BrowserSetDownloadBehavior{
		Behavior:         proto.BrowserSetDownloadBehaviorBehaviorAllow,
		BrowserContextID: incognito.BrowserContextID,
		DownloadPath:     b.downloadDir,
	}.Call(incognito)
	if err != nil {
		return nil, fmt.Errorf("configuring download behavior: %w", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	return &Session{page: page}, nil
}

// Close releases browser resources.
func (b *Browser) Close() error {
	err := b.browser.Close()
	if b.launcher != nil {
		b.launcher.Kill()
	}
	return err
}
