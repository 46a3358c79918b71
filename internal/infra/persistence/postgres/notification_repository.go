package postgres

import (
	"context"
	"fmt"

	"mutuals/internal/domain/entity"
	"mutuals/internal/domain/repository"
	"mutuals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const notificationBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Append persists notifications; the feed is never updated in place.
func (repo *notificationRepository) Append(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(notificationModels, notificationBatchSize).Error; err != nil {
		return storeError(err, "append notifications")
	}

	return nil
}

// FindByUser retrieves the user's feed, newest first.
func (repo *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, storeError(err, "find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	payload := make(map[string]string, len(data.Payload))
	for key, value := range data.Payload {
		if s, ok := value.(string); ok {
			payload[key] = s
		} else {
			payload[key] = fmt.Sprint(value)
		}
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Kind:      entity.NotificationKind(data.Kind),
		Payload:   payload,
		CreatedAt: data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	payload := make(datatypes.JSONMap, len(data.Payload))
	for key, value := range data.Payload {
		payload[key] = value
	}

	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Kind:      string(data.Kind),
		Payload:   payload,
		CreatedAt: data.CreatedAt,
	}
}
