package usecase

import (
	"context"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	GenerateProfileQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
	ResolveProfileQR(ctx context.Context, qrData string) (*entity.Profile, error)
}
