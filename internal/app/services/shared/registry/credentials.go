package registry

import (
	"audicare-service/internal/app/contracts"
	"context"
)

type staticCredentialProvider struct {
	token string
}

// NewStaticCredentialProvider serves the service token configured for the
// clinic registry. An empty token means requests go out unauthenticated.
func NewStaticCredentialProvider(token string) contracts.CredentialProvider {
	return &staticCredentialProvider{token: token}
}

func (p *staticCredentialProvider) BearerToken(_ context.Context) (string, bool) {
	return p.token, p.token != ""
}
