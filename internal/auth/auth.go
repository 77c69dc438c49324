package auth

import "context"

// Verifier checks a bearer credential and returns the authenticated subject.
// The credential is minted by an external identity provider; this service only
// verifies it and extracts who is calling.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
