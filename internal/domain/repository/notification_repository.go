package repository

import (
	"context"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines the append-only notification feed.
type NotificationRepository interface {
	// Append persists notifications in one batch.
	Append(ctx context.Context, notifications []*entity.Notification) error

	// FindByUser returns the notifications addressed to userID, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
