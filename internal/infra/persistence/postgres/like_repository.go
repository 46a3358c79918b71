package postgres

import (
	"context"

	"mutuals/internal/domain/entity"
	domainerrors "mutuals/internal/domain/errors"
	"mutuals/internal/domain/repository"
	"mutuals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

func (repo *likeRepository) Exists(ctx context.Context, likerID, likedID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("liker_id = ? AND liked_id = ?", likerID, likedID).
		Count(&count).Error; err != nil {
		return false, storeError(err, "check like")
	}

	return count > 0, nil
}

// Create inserts the like, returning repository.ErrDuplicateLike when the pair already exists.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		ID:        like.ID,
		LikerID:   like.LikerID,
		LikedID:   like.LikedID,
		CreatedAt: like.CreatedAt,
	}

	result := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(likeM)

	if err := result.Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrDuplicateLike
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrProfileNotFound
		case isCheckConstraintViolation(err):
			return domainerrors.ErrSelfLike
		}

		return storeError(err, "create like")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateLike
	}

	return nil
}

func (repo *likeRepository) Delete(ctx context.Context, likerID, likedID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("liker_id = ? AND liked_id = ?", likerID, likedID).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return false, storeError(result.Error, "delete like")
	}

	return result.RowsAffected > 0, nil
}

func (repo *likeRepository) ExistsUnregistered(ctx context.Context, likerPhone, likedPhone string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UnregisteredLikeModel{}).
		Where("liker_phone = ? AND liked_phone = ?", likerPhone, likedPhone).
		Count(&count).Error; err != nil {
		return false, storeError(err, "check unregistered like")
	}

	return count > 0, nil
}

// CreateUnregistered inserts the like, returning repository.ErrDuplicateUnregisteredLike when the pair already exists.
func (repo *likeRepository) CreateUnregistered(ctx context.Context, like *entity.UnregisteredLike) error {
	likeM := &model.UnregisteredLikeModel{
		ID:         like.ID,
		LikerPhone: like.LikerPhone,
		LikedPhone: like.LikedPhone,
		CreatedAt:  like.CreatedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(likeM)

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUnregisteredLike
		}

		return storeError(err, "create unregistered like")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateUnregisteredLike
	}

	return nil
}

func (repo *likeRepository) DeleteUnregistered(ctx context.Context, likerPhone, likedPhone string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("liker_phone = ? AND liked_phone = ?", likerPhone, likedPhone).
		Delete(&model.UnregisteredLikeModel{})
	if result.Error != nil {
		return false, storeError(result.Error, "delete unregistered like")
	}

	return result.RowsAffected > 0, nil
}
