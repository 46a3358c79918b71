package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is a directed interest from one profile to another.
type Like struct {
	ID        uuid.UUID `json:"id"`
	LikerID   uuid.UUID `json:"liker_id"`
	LikedID   uuid.UUID `json:"liked_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLike builds a Like with a fresh time-ordered ID.
func NewLike(likerID, likedID uuid.UUID, now time.Time) *Like {
	return &Like{
		ID:        uuid.Must(uuid.NewV7()),
		LikerID:   likerID,
		LikedID:   likedID,
		CreatedAt: now,
	}
}

// UnregisteredLike is a like addressed to a phone number that has no profile yet.
type UnregisteredLike struct {
	ID         uuid.UUID `json:"id"`
	LikerPhone string    `json:"liker_phone"`
	LikedPhone string    `json:"liked_phone"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUnregisteredLike builds an UnregisteredLike with a fresh time-ordered ID.
func NewUnregisteredLike(likerPhone, likedPhone string, now time.Time) *UnregisteredLike {
	return &UnregisteredLike{
		ID:         uuid.Must(uuid.NewV7()),
		LikerPhone: likerPhone,
		LikedPhone: likedPhone,
		CreatedAt:  now,
	}
}
