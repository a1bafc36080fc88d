package tabrip_test

import (
	"testing"

	"github.com/fwojciec/tabrip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *tabrip.Config {
	return &tabrip.Config{
		LoginURL:          "https://www.ultimate-guitar.com/login",
		PlaylistURL:       "https://www.ultimate-guitar.com/user/playlist/1",
		DownloadDir:       "/tmp/tabs",
		WkhtmltopdfPath:   "/usr/local/bin/wkhtmltopdf",
		Format:            tabrip.FormatPDF,
		MaxLoginAttempts:  3,
		RequestsPerSecond: 1.0,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete configuration", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validConfig().Validate())
	})

	t.Run("rejects missing required fields before any network activity", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			mutate func(*tabrip.Config)
			want   string
		}{
			{"login URL", func(c *tabrip.Config) { c.LoginURL = "" }, "login URL"},
			{"playlist URL", func(c *tabrip.Config) { c.PlaylistURL = "" }, "playlist URL"},
			{"download dir", func(c *tabrip.Config) { c.DownloadDir = "" }, "download directory"},
			{"converter path", func(c *tabrip.Config) { c.WkhtmltopdfPath = "" }, "wkhtmltopdf executable path"},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				cfg := validConfig()
				tt.mutate(cfg)

				err := cfg.Validate()
				require.Error(t, err)
				assert.Equal(t, tabrip.EINVALID, tabrip.ErrorCode(err))
				assert.Contains(t, tabrip.ErrorMessage(err), tt.want)
			})
		}
	})

	t.Run("enumerates all missing fields in one error", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.LoginURL = ""
		cfg.PlaylistURL = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, tabrip.ErrorMessage(err), "login URL")
		assert.Contains(t, tabrip.ErrorMessage(err), "playlist URL")
	})

	t.Run("converter path is not required for docx output", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.Format = tabrip.FormatDocx
		cfg.WkhtmltopdfPath = ""

		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects unknown output format", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.Format = "odt"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, tabrip.EINVALID, tabrip.ErrorCode(err))
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	t.Run("accepts known formats case-insensitively", func(t *testing.T) {
		t.Parallel()

		for in, want := range map[string]tabrip.OutputFormat{
			"pdf":   tabrip.FormatPDF,
			"PDF":   tabrip.FormatPDF,
			"docx":  tabrip.FormatDocx,
			" docx": tabrip.FormatDocx,
		} {
			got, err := tabrip.ParseFormat(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		t.Parallel()

		_, err := tabrip.ParseFormat("rtf")
		require.Error(t, err)
		assert.Equal(t, tabrip.EINVALID, tabrip.ErrorCode(err))
	})
}
