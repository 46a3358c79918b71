package usecase

import (
	"context"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase exposes the append-only notification feed.
type NotificationUsecase interface {
	// ListNotifications returns userID's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
