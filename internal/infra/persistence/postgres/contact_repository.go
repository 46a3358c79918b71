package postgres

import (
	"context"

	"mutuals/internal/domain/entity"
	"mutuals/internal/domain/repository"
	"mutuals/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const contactUpsertBatchSize = 100

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// FindLinkedByOwner returns the owner's contacts that resolve to a profile, with the profile attached.
func (repo *contactRepository) FindLinkedByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel

	query := repo.db.WithContext(ctx).
		InnerJoins("LinkedProfile").
		Where("contacts.owner_id = ?", ownerID).
		Order("contacts.display_name, contacts.id")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&contactModels).Error; err != nil {
		return nil, storeError(err, "find linked contacts")
	}

	return toContactDomains(contactModels), nil
}

// FindLinkedByOwnerMatching returns the owner's linked contacts whose profile matches term.
func (repo *contactRepository) FindLinkedByOwnerMatching(
	ctx context.Context,
	ownerID uuid.UUID,
	term string,
	excludeProfileID uuid.UUID,
	limit int,
) ([]*entity.Contact, error) {
	pattern := containsPattern(term)

	var contactModels []*model.ContactModel
	query := repo.db.WithContext(ctx).
		InnerJoins("LinkedProfile").
		Where("contacts.owner_id = ?", ownerID).
		Where(`"LinkedProfile".id <> ?`, excludeProfileID).
		Where(`("LinkedProfile".name ILIKE ? OR "LinkedProfile".username ILIKE ?)`, pattern, pattern).
		Order(`"LinkedProfile".name, contacts.id`)

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&contactModels).Error; err != nil {
		return nil, storeError(err, "find matching linked contacts")
	}

	return toContactDomains(contactModels), nil
}

// FindUnlinkedByOwnerMatching returns the owner's contacts without a profile whose name matches term.
func (repo *contactRepository) FindUnlinkedByOwnerMatching(ctx context.Context, ownerID uuid.UUID, term string, limit int) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel

	query := repo.db.WithContext(ctx).
		Where("owner_id = ? AND linked_profile_id IS NULL AND display_name ILIKE ?", ownerID, containsPattern(term)).
		Order("display_name, id")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&contactModels).Error; err != nil {
		return nil, storeError(err, "find matching unlinked contacts")
	}

	return toContactDomains(contactModels), nil
}

func (repo *contactRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel

	query := repo.db.WithContext(ctx).
		Preload("LinkedProfile").
		Where("owner_id = ?", ownerID).
		Order("display_name, id")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&contactModels).Error; err != nil {
		return nil, storeError(err, "find contacts by owner")
	}

	return toContactDomains(contactModels), nil
}

// Upsert inserts contacts or refreshes the existing row for the same (owner, phone).
func (repo *contactRepository) Upsert(ctx context.Context, contacts []*entity.Contact) error {
	if len(contacts) == 0 {
		return nil
	}

	contactModels := make([]*model.ContactModel, 0, len(contacts))
	for _, contact := range contacts {
		contactModels = append(contactModels, fromContactDomain(contact))
	}

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "phone_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "linked_profile_id", "is_imported", "updated_at"}),
		}).
		CreateInBatches(contactModels, contactUpsertBatchSize).Error
	if err != nil {
		return storeError(err, "upsert contacts")
	}

	for i, contactM := range contactModels {
		contacts[i].ID = contactM.ID
		contacts[i].CreatedAt = contactM.CreatedAt
		contacts[i].UpdatedAt = contactM.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		PhoneNumber:     data.PhoneNumber,
		DisplayName:     data.DisplayName,
		LinkedProfileID: data.LinkedProfileID,
		IsImported:      data.IsImported,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		LinkedProfile:   toProfileDomain(data.LinkedProfile),
	}
}

func toContactDomains(models []*model.ContactModel) []*entity.Contact {
	contacts := make([]*entity.Contact, 0, len(models))
	for _, contactM := range models {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	return &model.ContactModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		PhoneNumber:     data.PhoneNumber,
		DisplayName:     data.DisplayName,
		LinkedProfileID: data.LinkedProfileID,
		IsImported:      data.IsImported,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
