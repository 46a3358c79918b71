package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"mutuals/config"
	deliverycontext "mutuals/internal/delivery/context"
	"mutuals/internal/domain/entity"
	domainerrors "mutuals/internal/domain/errors"
	"mutuals/internal/domain/phone"
	"mutuals/internal/domain/repository"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const contactImportBatchSize = 500

type contactService struct {
	txManager          repository.TransactionManager
	profileRepo        repository.ProfileRepository
	contactRepo        repository.ContactRepository
	defaultCountryCode string
	logger             *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	ContactRepo repository.ContactRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewContactService creates a new contact service instance
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager:          params.TxManager,
		profileRepo:        params.ProfileRepo,
		contactRepo:        params.ContactRepo,
		defaultCountryCode: params.Config.Discovery.DefaultCountryCode,
		logger:             params.Logger,
	}
}

// ImportContacts normalises entries to E.164, links those that belong to a
// registered profile and upserts them in one transaction. Invalid numbers,
// duplicates and the owner's own number are skipped.
func (s *contactService) ImportContacts(ctx context.Context, ownerID uuid.UUID, entries []usecase.ContactEntry) (*usecase.ImportSummary, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	owner, found, err := s.profileRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find owner profile")
	}
	if !found {
		return nil, domainerrors.ErrProfileNotFound
	}
	ownerPhone, _ := owner.PhoneNumber()

	summary := &usecase.ImportSummary{}
	byPhone := make(map[string]*entity.Contact, len(entries))
	phones := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := strings.TrimSpace(entry.DisplayName)
		normalized, err := phone.Normalize(entry.PhoneNumber, s.defaultCountryCode)
		if err != nil || name == "" || normalized == ownerPhone {
			summary.Skipped++

			continue
		}
		if _, dup := byPhone[normalized]; dup {
			summary.Skipped++

			continue
		}

		byPhone[normalized] = &entity.Contact{
			OwnerID:     ownerID,
			PhoneNumber: normalized,
			DisplayName: name,
			IsImported:  true,
		}
		phones = append(phones, normalized)
	}

	if len(phones) == 0 {
		return summary, nil
	}

	linked := 0
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		contactRepo := repoFactory.NewContactRepository()

		for batch := range slices.Chunk(phones, contactImportBatchSize) {
			profiles, err := profileRepo.FindByPhones(ctx, batch)
			if err != nil {
				return errors.Wrap(err, "failed to find profiles by phone")
			}

			for _, profile := range profiles {
				number, _ := profile.PhoneNumber()
				contact, ok := byPhone[number]
				if !ok || profile.ID == ownerID || contact.IsLinked() {
					continue
				}
				profileID := profile.ID
				contact.LinkedProfileID = &profileID
				linked++
			}

			contacts := make([]*entity.Contact, 0, len(batch))
			for _, number := range batch {
				contacts = append(contacts, byPhone[number])
			}
			if err := contactRepo.Upsert(ctx, contacts); err != nil {
				return errors.Wrap(err, "failed to upsert contacts")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to import contacts")
	}

	summary.Imported = len(phones)
	summary.Linked = linked

	logger.Info("Contacts imported",
		slog.String("owner_id", ownerID.String()),
		slog.Int("imported", summary.Imported),
		slog.Int("linked", summary.Linked),
		slog.Int("skipped", summary.Skipped),
	)

	return summary, nil
}

func (s *contactService) ListContacts(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Contact, error) {
	limit, offset = normalizePage(limit, offset)

	contacts, err := s.contactRepo.FindByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}
