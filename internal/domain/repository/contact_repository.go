package repository

import (
	"context"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactRepository defines the operations on imported address books.
type ContactRepository interface {
	// FindLinkedByOwner returns up to limit contacts of ownerID that resolve to a
	// profile, with LinkedProfile populated.
	FindLinkedByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.Contact, error)

	// FindLinkedByOwnerMatching returns up to limit linked contacts of ownerID whose
	// profile name or username contains term, skipping contacts linked to excludeProfileID.
	FindLinkedByOwnerMatching(ctx context.Context, ownerID uuid.UUID, term string, excludeProfileID uuid.UUID, limit int) ([]*entity.Contact, error)

	// FindUnlinkedByOwnerMatching returns up to limit contacts of ownerID without a
	// profile whose display name contains term.
	FindUnlinkedByOwnerMatching(ctx context.Context, ownerID uuid.UUID, term string, limit int) ([]*entity.Contact, error)

	// FindByOwner pages through all contacts of ownerID ordered by display name.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Contact, error)

	// Upsert inserts contacts, updating display name and link on (owner, phone) conflicts.
	Upsert(ctx context.Context, contacts []*entity.Contact) error
}
