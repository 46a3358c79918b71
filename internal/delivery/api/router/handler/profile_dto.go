package handler

import (
	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileSummary is the public view of another user's profile.
type ProfileSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
}

func newProfileSummary(profile *entity.Profile) *ProfileSummary {
	return &ProfileSummary{
		ID:        profile.ID,
		Username:  profile.Username,
		Name:      profile.DisplayName(),
		Bio:       profile.Bio,
		AvatarURL: profile.AvatarURL,
	}
}
