package usecase

import (
	"context"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactUsecase imports and lists a user's address book.
type ContactUsecase interface {
	// ImportContacts normalises, links and upserts address-book entries.
	ImportContacts(ctx context.Context, ownerID uuid.UUID, entries []ContactEntry) (*ImportSummary, error)

	// ListContacts pages through ownerID's contacts.
	ListContacts(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Contact, error)
}

// --- Input DTOs ---

// ContactEntry is one address-book row as sent by the client.
type ContactEntry struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=32"`
	DisplayName string `json:"display_name" validate:"required,max=255"`
}

// --- Output DTOs ---

// ImportSummary counts what happened to the submitted entries.
type ImportSummary struct {
	Imported int `json:"imported"`
	Linked   int `json:"linked"`
	Skipped  int `json:"skipped"`
}
