// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Session is the caller identity threaded explicitly through every request.
type Session struct {
	ExternalID string    // Identity provider user id.
	UserID     uuid.UUID // Internal profile id.
}

// IdentityUsecase maps identity provider users to internal profiles.
type IdentityUsecase interface {
	// Resolve returns the stable internal identity UUID for externalID without I/O.
	Resolve(externalID string) uuid.UUID

	// EnsureProfile looks up the profile registered for externalID. Unknown
	// identities are remembered for a short window; known ones until invalidated.
	EnsureProfile(ctx context.Context, externalID string) (userID uuid.UUID, found bool, err error)

	// OpenSession resolves externalID into a Session, failing when no profile exists.
	OpenSession(ctx context.Context, externalID string) (*Session, error)

	// Invalidate drops any cached lookup for externalID.
	Invalidate(externalID string)

	// InvalidateAll drops every cached lookup.
	InvalidateAll()
}
