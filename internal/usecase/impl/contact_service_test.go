package impl

import (
	"context"
	"testing"

	"mutuals/internal/domain/entity"
	domainerrors "mutuals/internal/domain/errors"
	"mutuals/internal/domain/repository"
	"mutuals/internal/infra/persistence/memory"
	mockRepo "mutuals/internal/mocks/repository"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContactServiceForStore(store *memory.Store) usecase.ContactUsecase {
	return NewContactService(ContactServiceParams{
		TxManager:   store.TransactionManager(),
		ProfileRepo: store.Profiles(),
		ContactRepo: store.Contacts(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
}

func TestContactService_ImportContacts(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	owner := seedProfile(t, store, "owner", "Owner", "+15550000000")
	friend := seedProfile(t, store, "friend", "Friend", "+15550000001")
	svc := newContactServiceForStore(store)

	summary, err := svc.ImportContacts(ctx, owner.ID, []usecase.ContactEntry{
		{PhoneNumber: "555-000-0001", DisplayName: "Best Friend"},
		{PhoneNumber: "+1 555 000 0002", DisplayName: "Stranger"},
		{PhoneNumber: "+15550000002", DisplayName: "Stranger Again"},
		{PhoneNumber: "555 000 0000", DisplayName: "Me"},
		{PhoneNumber: "garbage", DisplayName: "Broken"},
		{PhoneNumber: "+15550000003", DisplayName: "   "},
	})
	require.NoError(t, err)
	assert.Equal(t, &usecase.ImportSummary{Imported: 2, Linked: 1, Skipped: 4}, summary)

	contacts, err := svc.ListContacts(ctx, owner.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	assert.Equal(t, "Best Friend", contacts[0].DisplayName)
	require.True(t, contacts[0].IsLinked())
	assert.Equal(t, friend.ID, *contacts[0].LinkedProfileID)

	assert.Equal(t, "Stranger", contacts[1].DisplayName)
	assert.Equal(t, "+15550000002", contacts[1].PhoneNumber)
	assert.False(t, contacts[1].IsLinked())
}

func TestContactService_ImportContacts_ReimportKeepsIdentity(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	owner := seedProfile(t, store, "owner", "Owner", "")
	svc := newContactServiceForStore(store)

	_, err := svc.ImportContacts(ctx, owner.ID, []usecase.ContactEntry{{PhoneNumber: "+15550000007", DisplayName: "Old Name"}})
	require.NoError(t, err)
	before, err := svc.ListContacts(ctx, owner.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, before, 1)

	// The number now belongs to a registered profile.
	linked := seedProfile(t, store, "newbie", "Newbie", "+15550000007")

	summary, err := svc.ImportContacts(ctx, owner.ID, []usecase.ContactEntry{{PhoneNumber: "+15550000007", DisplayName: "New Name"}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Linked)

	after, err := svc.ListContacts(ctx, owner.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, "New Name", after[0].DisplayName)
	assert.Equal(t, linked.ID, *after[0].LinkedProfileID)
}

func TestContactService_ImportContacts_NothingValid(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	ownerID := uuid.New()
	svc := NewContactService(ContactServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		ProfileRepo: profileRepo,
		ContactRepo: mockRepo.NewMockContactRepository(t),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	profileRepo.EXPECT().FindByID(mock.Anything, ownerID).Return(&entity.Profile{ID: ownerID}, true, nil)

	summary, err := svc.ImportContacts(context.Background(), ownerID, []usecase.ContactEntry{{PhoneNumber: "x", DisplayName: "X"}})
	require.NoError(t, err)
	assert.Equal(t, &usecase.ImportSummary{Skipped: 1}, summary)
}

func TestContactService_ImportContacts_UnknownOwner(t *testing.T) {
	svc := newContactServiceForStore(memory.New())

	_, err := svc.ImportContacts(context.Background(), uuid.New(), []usecase.ContactEntry{{PhoneNumber: "+15550000001", DisplayName: "A"}})
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestContactService_ImportContacts_RollsBackOnUpsertFailure(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	ownerID := uuid.New()
	svc := NewContactService(ContactServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		ContactRepo: contactRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	storeErr := domainerrors.NewStoreUnavailableError(errors.New("deadlock"), "upsert contacts")

	profileRepo.EXPECT().FindByID(mock.Anything, ownerID).Return(&entity.Profile{ID: ownerID}, true, nil)
	profileRepo.EXPECT().FindByPhones(mock.Anything, []string{"+15550000001"}).Return([]*entity.Profile{}, nil)
	contactRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(storeErr)

	factory := &stubRepositoryFactory{profileRepo: profileRepo, contactRepo: contactRepo}
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		},
	)

	_, err := svc.ImportContacts(context.Background(), ownerID, []usecase.ContactEntry{{PhoneNumber: "+15550000001", DisplayName: "A"}})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindStoreUnavailable, domainerrors.KindOf(err))
}

type stubRepositoryFactory struct {
	repository.RepositoryFactory

	profileRepo repository.ProfileRepository
	contactRepo repository.ContactRepository
	likeRepo    repository.LikeRepository
	matchRepo   repository.MatchRepository
}

func (f *stubRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return f.profileRepo
}

func (f *stubRepositoryFactory) NewContactRepository() repository.ContactRepository {
	return f.contactRepo
}

func (f *stubRepositoryFactory) NewLikeRepository() repository.LikeRepository {
	return f.likeRepo
}

func (f *stubRepositoryFactory) NewMatchRepository() repository.MatchRepository {
	return f.matchRepo
}
