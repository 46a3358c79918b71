package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. The pair (liker_id, liked_id) is unique
// and chk_likes_not_self rejects self likes.
type LikeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LikerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_pair,priority:1"`
	LikedID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_pair,priority:2;index"`
	CreatedAt time.Time

	Liker *ProfileModel `gorm:"foreignKey:LikerID;constraint:OnDelete:CASCADE"`
	Liked *ProfileModel `gorm:"foreignKey:LikedID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// UnregisteredLikeModel mirrors the 'unregistered_likes' table, keyed by phone numbers.
type UnregisteredLikeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LikerPhone string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_unregistered_likes_pair,priority:1"`
	LikedPhone string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_unregistered_likes_pair,priority:2;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UnregisteredLikeModel) TableName() string {
	return "unregistered_likes"
}
