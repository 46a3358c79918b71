// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a registered user visible to search and likes.
type Profile struct {
	ID               uuid.UUID `json:"id"`                // Internal identifier.
	ExternalIdentity string    `json:"external_identity"` // Resolved identity UUID (string form) of the identity provider user.
	Username         string    `json:"username"`          // Unique, compared case-insensitively.
	Name             string    `json:"name"`              // Display name.
	Phone            *string   `json:"phone,omitempty"`   // E.164 phone number, if the user shared one.
	Bio              *string   `json:"bio,omitempty"`
	AvatarURL        *string   `json:"avatar_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DisplayName returns the name shown in search results, falling back to the username.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}

	return p.Username
}

// PhoneNumber returns the profile's phone and whether one is set.
func (p *Profile) PhoneNumber() (string, bool) {
	if p.Phone == nil || *p.Phone == "" {
		return "", false
	}

	return *p.Phone, true
}
