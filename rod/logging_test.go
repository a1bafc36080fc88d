package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/tabrip"
	"github.com/fwojciec/tabrip/mock"
	"github.com/fwojciec/tabrip/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSession_Navigate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var gotURL string
	next := &mock.Session{
		NavigateFn: func(ctx context.Context, url string) error {
			gotURL = url
			return nil
		},
	}

	s := rod.NewLoggingSession(next, logger)
	err := s.Navigate(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", gotURL)
	assert.Contains(t, buf.String(), "navigate")
	assert.Contains(t, buf.String(), "https://example.com")
}

func TestLoggingSession_Delegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	closed := false
	next := &mock.Session{
		HasCookieFn: func(ctx context.Context, name string) (bool, error) {
			return name == "bbusername", nil
		},
		CloseFn: func() error {
			closed = true
			return nil
		},
	}

	s := rod.NewLoggingSession(next, logger)

	ok, err := s.HasCookie(context.Background(), "bbusername")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Close())
	assert.True(t, closed)
}

func TestLoggingBrowser_NewSession(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	browser := &mock.Browser{
		NewSessionFn: func(ctx context.Context) (tabrip.Session, error) {
			return &mock.Session{}, nil
		},
	}

	b := rod.NewLoggingBrowser(browser, logger)
	session, err := b.NewSession(context.Background())

	require.NoError(t, err)
	require.NoError(t, session.Navigate(context.Background(), "https://example.com"))
	assert.Contains(t, buf.String(), "navigate")
	require.NoError(t, b.Close())
}
