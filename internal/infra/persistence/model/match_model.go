package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchModel mirrors the 'matches' table. chk_matches_ordered keeps user_a < user_b,
// so the unique pair index covers both orders.
type MatchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserA     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair,priority:1"`
	UserB     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair,priority:2;index"`
	MatchedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
