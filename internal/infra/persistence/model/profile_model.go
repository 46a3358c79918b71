package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Usernames are unique case-insensitively through the idx_profiles_username_lower expression index.
type ProfileModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExternalIdentity string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Username         string    `gorm:"type:varchar(50);not null"`
	Name             string    `gorm:"type:varchar(100)"`
	Phone            *string   `gorm:"type:varchar(20);index"`
	Bio              *string   `gorm:"type:text"`
	AvatarURL        *string   `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
