package mock

import (
	"context"

	"github.com/fwojciec/tabrip"
)

var _ tabrip.CredentialSource = (*CredentialSource)(nil)

// CredentialSource is a mock implementation of tabrip.CredentialSource.
type CredentialSource struct {
	CredentialsFn func(ctx context.Context) (tabrip.Credentials, error)
}

func (s *CredentialSource) Credentials(ctx context.Context) (tabrip.Credentials, error) {
	if s.CredentialsFn == nil {
		return tabrip.Credentials{}, nil
	}
	return s.CredentialsFn(ctx)
}
