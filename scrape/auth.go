// Package scrape provides the batch scraping orchestration. It coordinates
// login, tab-link discovery, content extraction, and document emission.
package scrape

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/tabrip"
)

// Login flow landmarks on the catalog's login page. The identity cookie is
// the only reliable signal that a login round-trip succeeded.
const (
	identityCookie   = "bbusername"
	loginButtonText  = "Log in"
	usernameSelector = `input[name="username"]`
	passwordSelector = `input[name="password"]`
)

// Default waits for the login flow. Controls appear slowly on the login
// page; the identity cookie lands shortly after a successful submit.
const (
	defaultControlWait = 10 * time.Second
	defaultCookieWait  = 5 * time.Second
	cookiePollInterval = 250 * time.Millisecond
)

// Authenticator performs the interactive login flow. Each attempt runs in
// a fresh session so a failed attempt leaves no cookies behind.
type Authenticator struct {
	Browser     tabrip.Browser
	Credentials tabrip.CredentialSource
	Logger      *slog.Logger

	// ControlWait bounds waiting for login-page controls to appear.
	ControlWait time.Duration

	// CookieWait bounds waiting for the identity cookie after submit.
	CookieWait time.Duration
}

// Login runs login attempts until one succeeds or maxAttempts are
// exhausted. Zero maxAttempts means retry indefinitely; the user bails
// out by canceling the context. Credentials are requested fresh for every
// attempt, so an interactive source re-prompts after a failure.
//
// On success the returned session carries the identity cookie and is ready
// for authenticated navigation. The caller owns closing it.
func (a *Authenticator) Login(ctx context.Context, loginURL string, maxAttempts int) (tabrip.Session, error) {
	logger := a.logger()
	for attempt := 1; maxAttempts == 0 || attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		creds, err := a.Credentials.Credentials(ctx)
		if err != nil {
			return nil, err
		}

		session, err := a.attempt(ctx, loginURL, creds)
		if err == nil {
			logger.Info("logged in", slog.String("username", creds.Username), slog.Int("attempt", attempt))
			return session, nil
		}
		if tabrip.ErrorCode(err) != tabrip.EAUTH {
			return nil, err
		}
		logger.Warn("login attempt failed", slog.Int("attempt", attempt), slog.String("reason", tabrip.ErrorMessage(err)))
	}
	return nil, tabrip.Errorf(tabrip.EAUTH, "login attempts exhausted after %d tries", maxAttempts)
}

// attempt performs a single login round-trip in a fresh session. The
// session is closed on any failure so only a successful attempt hands a
// live session back.
func (a *Authenticator) attempt(ctx context.Context, loginURL string, creds tabrip.Credentials) (tabrip.Session, error) {
	session, err := a.Browser.NewSession(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.fillAndSubmit(ctx, session, loginURL, creds); err != nil {
		_ = session.Close()
		return nil, err
	}

	ok, err := a.waitForCookie(ctx, session)
	if err != nil {
		_ = session.Close()
		return nil, err
	}
	if !ok {
		_ = session.Close()
		return nil, tabrip.Errorf(tabrip.EAUTH, "login was not accepted; check your username and password")
	}
	return session, nil
}

func (a *Authenticator) fillAndSubmit(ctx context.Context, session tabrip.Session, loginURL string, creds tabrip.Credentials) error {
	if err := session.Navigate(ctx, loginURL); err != nil {
		return err
	}

	controlCtx, cancel := context.WithTimeout(ctx, a.controlWait())
	defer cancel()

	// The login form is hidden behind a reveal button.
	if err := session.ClickMatching(controlCtx, "button", loginButtonText); err != nil {
		return tabrip.Errorf(tabrip.EAUTH, "login page did not offer a login button")
	}
	if err := session.WaitFor(controlCtx, usernameSelector); err != nil {
		return tabrip.Errorf(tabrip.EAUTH, "login form did not appear")
	}
	if err := session.Input(controlCtx, usernameSelector, creds.Username); err != nil {
		return tabrip.Errorf(tabrip.EAUTH, "username field was not usable")
	}
	if err := session.Input(controlCtx, passwordSelector, creds.Password); err != nil {
		return tabrip.Errorf(tabrip.EAUTH, "password field was not usable")
	}
	if err := session.PressEnter(controlCtx, passwordSelector); err != nil {
		return tabrip.Errorf(tabrip.EAUTH, "login form could not be submitted")
	}
	return nil
}

// waitForCookie polls for the identity cookie. The cookie's absence after
// the wait window means the catalog rejected the credentials.
func (a *Authenticator) waitForCookie(ctx context.Context, session tabrip.Session) (bool, error) {
	deadline := time.Now().Add(a.cookieWait())
	ticker := time.NewTicker(cookiePollInterval)
	defer ticker.Stop()

	for {
		ok, err := session.HasCookie(ctx, identityCookie)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if time.Now().After(deadline) {
			return false, nil
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (a *Authenticator) controlWait() time.Duration {
	if a.ControlWait > 0 {
		return a.ControlWait
	}
	return defaultControlWait
}

func (a *Authenticator) cookieWait() time.Duration {
	if a.CookieWait > 0 {
		return a.CookieWait
	}
	return defaultCookieWait
}

func (a *Authenticator) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
