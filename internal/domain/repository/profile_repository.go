// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
//
// Lookups report absence with a found flag instead of an error; errors are
// reserved for store failures (domainerrors.StoreUnavailableError) and
// uniqueness conflicts (the ErrDuplicate* sentinels).
package repository

import (
	"context"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileRepository defines read access to registered profiles.
type ProfileRepository interface {
	// FindByID retrieves a profile by its internal ID.
	FindByID(ctx context.Context, id uuid.UUID) (profile *entity.Profile, found bool, err error)

	// FindByExternalIdentity retrieves the profile registered for a resolved identity UUID.
	FindByExternalIdentity(ctx context.Context, externalIdentity string) (profile *entity.Profile, found bool, err error)

	// FindByUsername retrieves a profile by username, case-insensitively.
	FindByUsername(ctx context.Context, username string) (profile *entity.Profile, found bool, err error)

	// FindByPhones returns the profiles registered with any of the given E.164 numbers.
	FindByPhones(ctx context.Context, phones []string) ([]*entity.Profile, error)

	// Search returns up to limit profiles whose name or username contains term, excluding excludeID.
	Search(ctx context.Context, term string, excludeID uuid.UUID, limit int) ([]*entity.Profile, error)
}
