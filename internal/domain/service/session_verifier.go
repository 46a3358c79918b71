package service

import "context"

// SessionVerifier validates an identity provider session token
type SessionVerifier interface {
	// Verify returns the provider's stable user id for token
	Verify(ctx context.Context, token string) (externalID string, err error)
}
