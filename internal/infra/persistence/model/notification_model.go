package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel mirrors the append-only 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	Kind      string            `gorm:"type:varchar(16);not null"`
	Payload   datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time         `gorm:"not null;index:idx_notifications_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
