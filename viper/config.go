// Package viper loads run settings from an ini-style configuration file.
package viper

import (
	"strings"

	"github.com/fwojciec/tabrip"
	"github.com/spf13/viper"
)

// Required settings, by group and key.
var requiredKeys = []string{
	"urls.login_url",
	"urls.playlist_url",
}

// Load reads the configuration file at path. It returns the run
// configuration and, when the file stores credentials, the stored
// credential pair. Missing required keys are a fatal EINVALID error
// naming every absent group/key.
func Load(path string) (*tabrip.Config, *tabrip.Credentials, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, tabrip.Errorf(tabrip.EINVALID, "reading configuration %s: %v", path, err)
	}

	v.SetDefault("download.location", ".")
	v.SetDefault("output.format", string(tabrip.FormatPDF))
	v.SetDefault("auth.max_attempts", 3)
	v.SetDefault("rate.requests_per_second", 1.0)

	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, nil, tabrip.Errorf(tabrip.EINVALID,
			"missing required configuration keys: %s", strings.Join(missing, ", "))
	}

	format, err := tabrip.ParseFormat(v.GetString("output.format"))
	if err != nil {
		return nil, nil, err
	}

	cfg := &tabrip.Config{
		LoginURL:          v.GetString("urls.login_url"),
		PlaylistURL:       v.GetString("urls.playlist_url"),
		DownloadDir:       v.GetString("download.location"),
		WkhtmltopdfPath:   v.GetString("pdfkit.executable_path"),
		Format:            format,
		MaxLoginAttempts:  v.GetInt("auth.max_attempts"),
		RequestsPerSecond: v.GetFloat64("rate.requests_per_second"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	creds := storedCredentials(v)
	return cfg, creds, nil
}

// storedCredentials returns the credential pair from the auth group, or
// nil when either half is absent and the user must be prompted.
func storedCredentials(v *viper.Viper) *tabrip.Credentials {
	username := v.GetString("auth.username")
	password := v.GetString("auth.password")
	if username == "" || password == "" {
		return nil
	}
	return &tabrip.Credentials{Username: username, Password: password}
}
