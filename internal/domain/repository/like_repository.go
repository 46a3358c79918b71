package repository

import (
	"context"
	"errors"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// Uniqueness conflicts reported by inserts. Callers reconcile by re-reading.
var (
	// ErrDuplicateLike is returned when (liker, liked) already exists.
	ErrDuplicateLike = errors.New("like already exists")
	// ErrDuplicateUnregisteredLike is returned when (likerPhone, likedPhone) already exists.
	ErrDuplicateUnregisteredLike = errors.New("unregistered like already exists")
)

// LikeRepository defines the operations on directed likes.
type LikeRepository interface {
	// Exists reports whether likerID likes likedID.
	Exists(ctx context.Context, likerID, likedID uuid.UUID) (bool, error)

	// Create inserts a like or returns ErrDuplicateLike.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes the like; deleted is false when there was nothing to remove.
	Delete(ctx context.Context, likerID, likedID uuid.UUID) (deleted bool, err error)

	// ExistsUnregistered reports whether likerPhone likes likedPhone.
	ExistsUnregistered(ctx context.Context, likerPhone, likedPhone string) (bool, error)

	// CreateUnregistered inserts an unregistered like or returns ErrDuplicateUnregisteredLike.
	CreateUnregistered(ctx context.Context, like *entity.UnregisteredLike) error

	// DeleteUnregistered removes the unregistered like; deleted is false when there was nothing to remove.
	DeleteUnregistered(ctx context.Context, likerPhone, likedPhone string) (deleted bool, err error)
}
