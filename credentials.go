package tabrip

import "context"

// Credentials is a transient username/password pair. It exists only for
// the duration of a login attempt and is never persisted by this package.
type Credentials struct {
	Username string
	Password string
}

// CredentialSource produces credentials for a login attempt. Interactive
// implementations may prompt the user; the source is consulted once per
// attempt so a retry re-prompts.
type CredentialSource interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// StaticSource returns a CredentialSource that always yields c. It backs
// the stored-credentials path of the settings file.
func StaticSource(c Credentials) CredentialSource {
	return staticSource{c: c}
}

type staticSource struct {
	c Credentials
}

func (s staticSource) Credentials(ctx context.Context) (Credentials, error) {
	return s.c, nil
}
