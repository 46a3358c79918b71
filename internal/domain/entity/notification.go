package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies what a notification is about.
type NotificationKind string

const (
	NotificationKindLike  NotificationKind = "like"
	NotificationKindMatch NotificationKind = "match"
)

// Payload keys
const (
	PayloadActorID = "actor_id"
	PayloadMatchID = "match_id"
)

// Notification is an append-only feed entry for a user.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"` // Recipient.
	Kind      NotificationKind  `json:"kind"`
	Payload   map[string]string `json:"payload"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewLikeNotification tells likedID that likerID liked them.
func NewLikeNotification(likerID, likedID uuid.UUID, now time.Time) *Notification {
	return &Notification{
		ID:     uuid.Must(uuid.NewV7()),
		UserID: likedID,
		Kind:   NotificationKindLike,
		Payload: map[string]string{
			PayloadActorID: likerID.String(),
		},
		CreatedAt: now,
	}
}

// NewMatchNotifications returns one match notification for each side of m.
func NewMatchNotifications(m *Match, now time.Time) []*Notification {
	build := func(recipient uuid.UUID) *Notification {
		return &Notification{
			ID:     uuid.Must(uuid.NewV7()),
			UserID: recipient,
			Kind:   NotificationKindMatch,
			Payload: map[string]string{
				PayloadActorID: m.Other(recipient).String(),
				PayloadMatchID: m.ID.String(),
			},
			CreatedAt: now,
		}
	}

	return []*Notification{build(m.UserA), build(m.UserB)}
}
