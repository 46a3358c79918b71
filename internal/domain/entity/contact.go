package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an address-book entry owned by a profile.
type Contact struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`                    // Profile that imported the entry.
	PhoneNumber     string     `json:"phone_number"`                // Normalised E.164 number, unique per owner.
	DisplayName     string     `json:"display_name"`                // Name as stored in the owner's address book.
	LinkedProfileID *uuid.UUID `json:"linked_profile_id,omitempty"` // Registered profile with this phone number.
	IsImported      bool       `json:"is_imported"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// LinkedProfile is populated by queries that join the linked profile.
	LinkedProfile *Profile `json:"linked_profile,omitempty"`
}

// IsLinked reports whether the contact resolves to a registered profile.
func (c *Contact) IsLinked() bool {
	return c.LinkedProfileID != nil
}
