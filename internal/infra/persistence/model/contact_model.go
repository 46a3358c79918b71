package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table. A phone number appears at most once per owner.
type ContactModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_contacts_owner_phone"`
	PhoneNumber     string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_contacts_owner_phone"`
	DisplayName     string     `gorm:"type:varchar(100);not null"`
	LinkedProfileID *uuid.UUID `gorm:"type:uuid;index"`
	IsImported      bool       `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Owner         *ProfileModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	LinkedProfile *ProfileModel `gorm:"foreignKey:LinkedProfileID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
