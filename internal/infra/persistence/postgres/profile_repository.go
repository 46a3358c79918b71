package postgres

import (
	"context"

	"mutuals/internal/domain/entity"
	"mutuals/internal/domain/repository"
	"mutuals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, bool, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *profileRepository) FindByExternalIdentity(ctx context.Context, externalIdentity string) (*entity.Profile, bool, error) {
	return repo.findOne(ctx, "external_identity = ?", externalIdentity)
}

func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, bool, error) {
	return repo.findOne(ctx, "lower(username) = lower(?)", username)
}

func (repo *profileRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Profile, bool, error) {
	var profileM model.ProfileModel

	err := repo.db.WithContext(ctx).Where(query, args...).Take(&profileM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storeError(err, "find profile")
	}

	return toProfileDomain(&profileM), true, nil
}

// FindByPhones returns the profiles registered under any of phones.
func (repo *profileRepository) FindByPhones(ctx context.Context, phones []string) ([]*entity.Profile, error) {
	if len(phones) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("phone IN ?", phones).
		Order("name, id").
		Find(&profileModels).Error; err != nil {
		return nil, storeError(err, "find profiles by phone")
	}

	return toProfileDomains(profileModels), nil
}

// Search matches term against name and username, case-insensitively.
func (repo *profileRepository) Search(ctx context.Context, term string, excludeID uuid.UUID, limit int) ([]*entity.Profile, error) {
	pattern := containsPattern(term)

	var profileModels []*model.ProfileModel
	query := repo.db.WithContext(ctx).
		Where("(name ILIKE ? OR username ILIKE ?) AND id <> ?", pattern, pattern, excludeID).
		Order("lower(coalesce(nullif(name, ''), username)), id")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&profileModels).Error; err != nil {
		return nil, storeError(err, "search profiles")
	}

	return toProfileDomains(profileModels), nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:               data.ID,
		ExternalIdentity: data.ExternalIdentity,
		Username:         data.Username,
		Name:             data.Name,
		Phone:            data.Phone,
		Bio:              data.Bio,
		AvatarURL:        data.AvatarURL,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toProfileDomains(models []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(models))
	for _, profileM := range models {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}
