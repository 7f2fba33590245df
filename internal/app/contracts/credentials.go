package contracts

import "context"

// CredentialProvider supplies an optional bearer token for registry
// requests. A missing token is not an error at this layer; the registry
// decides whether the call needs one.
type CredentialProvider interface {
	BearerToken(ctx context.Context) (string, bool)
}
