package postgres

import (
	"context"

	"mutuals/internal/domain/entity"
	"mutuals/internal/domain/repository"
	"mutuals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// Create inserts the match, returning repository.ErrDuplicateMatch when the pair already matched.
func (repo *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fromMatchDomain(match))

	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMatch
		}

		return storeError(err, "create match")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateMatch
	}

	return nil
}

func (repo *matchRepository) FindByPair(ctx context.Context, x, y uuid.UUID) (*entity.Match, bool, error) {
	a, b := entity.OrderedPair(x, y)

	var matchM model.MatchModel
	err := repo.db.WithContext(ctx).
		Where("user_a = ? AND user_b = ?", a, b).
		Take(&matchM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storeError(err, "find match")
	}

	return toMatchDomain(&matchM), true, nil
}

func (repo *matchRepository) DeleteByPair(ctx context.Context, x, y uuid.UUID) (bool, error) {
	a, b := entity.OrderedPair(x, y)

	result := repo.db.WithContext(ctx).
		Where("user_a = ? AND user_b = ?", a, b).
		Delete(&model.MatchModel{})
	if result.Error != nil {
		return false, storeError(result.Error, "delete match")
	}

	return result.RowsAffected > 0, nil
}

// FindByUser lists the user's matches, newest first.
func (repo *matchRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error) {
	var matchModels []*model.MatchModel

	query := repo.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", userID, userID).
		Order("matched_at DESC, id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&matchModels).Error; err != nil {
		return nil, storeError(err, "find matches by user")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

// --- Mapper Functions ---

func toMatchDomain(data *model.MatchModel) *entity.Match {
	return &entity.Match{
		ID:        data.ID,
		UserA:     data.UserA,
		UserB:     data.UserB,
		MatchedAt: data.MatchedAt,
	}
}

func fromMatchDomain(data *entity.Match) *model.MatchModel {
	return &model.MatchModel{
		ID:        data.ID,
		UserA:     data.UserA,
		UserB:     data.UserB,
		MatchedAt: data.MatchedAt,
	}
}
