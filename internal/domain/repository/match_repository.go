package repository

import (
	"context"
	"errors"

	"mutuals/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateMatch is returned when the ordered pair already has a match.
var ErrDuplicateMatch = errors.New("match already exists")

// MatchRepository defines the operations on matches. Pairs are passed in any
// order; implementations order them before touching the store.
type MatchRepository interface {
	// Create inserts a match or returns ErrDuplicateMatch.
	Create(ctx context.Context, match *entity.Match) error

	// FindByPair retrieves the match between x and y.
	FindByPair(ctx context.Context, x, y uuid.UUID) (match *entity.Match, found bool, err error)

	// DeleteByPair removes the match between x and y.
	DeleteByPair(ctx context.Context, x, y uuid.UUID) (deleted bool, err error)

	// FindByUser returns the matches userID is part of, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error)
}
