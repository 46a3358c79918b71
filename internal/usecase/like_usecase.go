package usecase

import (
	"context"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeUsecase maintains likes and promotes reciprocal likes into matches.
type LikeUsecase interface {
	// ToggleLike likes likedID if the caller does not yet, otherwise unlikes.
	ToggleLike(ctx context.Context, likerID, likedID uuid.UUID) (*ToggleLikeResult, error)

	// ToggleUnregisteredLike likes or unlikes a phone number that has no profile.
	ToggleUnregisteredLike(ctx context.Context, likerID uuid.UUID, targetPhone string) (*ToggleUnregisteredLikeResult, error)

	// RelationState reports the like/match state between userID and otherID.
	RelationState(ctx context.Context, userID, otherID uuid.UUID) (*entity.Relation, error)

	// ListMatches returns userID's matches, newest first.
	ListMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error)
}

// --- Output DTOs ---

// ToggleLikeResult is the state after a toggle.
type ToggleLikeResult struct {
	Liked   bool `json:"liked"`
	IsMatch bool `json:"is_match"`
	// NotificationFailed is set when the relational change succeeded but the
	// notification append did not.
	NotificationFailed bool `json:"notification_failed,omitempty"`
}

// ToggleUnregisteredLikeResult is the state after an unregistered toggle.
type ToggleUnregisteredLikeResult struct {
	Liked bool `json:"liked"`
	// NotifierFailed is set when the like was stored but the SMS invite could not be sent.
	NotifierFailed bool `json:"notifier_failed,omitempty"`
}
