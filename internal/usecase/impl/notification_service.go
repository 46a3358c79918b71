package impl

import (
	"context"

	"mutuals/internal/domain/constants"
	"mutuals/internal/domain/entity"
	"mutuals/internal/domain/repository"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
	}
}

// ListNotifications retrieves a user's notification feed with pagination
func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	limit, offset = normalizePage(limit, offset)

	notifications, err := s.notificationRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// normalizePage clamps list parameters to the shared pagination bounds
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = constants.DefaultPageLimit
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
