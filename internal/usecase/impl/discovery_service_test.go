package impl

import (
	"context"
	"fmt"
	"testing"

	"mutuals/internal/domain/entity"
	domainerrors "mutuals/internal/domain/errors"
	"mutuals/internal/domain/search"
	"mutuals/internal/infra/persistence/memory"
	mockRepo "mutuals/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedProfile(t *testing.T, store *memory.Store, username, name, phone string) *entity.Profile {
	t.Helper()

	profile := &entity.Profile{
		ID:               uuid.New(),
		ExternalIdentity: uuid.NewString(),
		Username:         username,
		Name:             name,
	}
	if phone != "" {
		profile.Phone = &phone
	}
	require.NoError(t, store.PutProfile(profile))

	return profile
}

func seedContact(t *testing.T, store *memory.Store, owner uuid.UUID, name, phone string, linked *entity.Profile) {
	t.Helper()

	contact := &entity.Contact{OwnerID: owner, DisplayName: name, PhoneNumber: phone, IsImported: true}
	if linked != nil {
		id := linked.ID
		contact.LinkedProfileID = &id
	}
	require.NoError(t, store.Contacts().Upsert(context.Background(), []*entity.Contact{contact}))
}

func newDiscoveryServiceForStore(store *memory.Store) *discoveryService {
	return NewDiscoveryService(DiscoveryServiceParams{
		ContactRepo: store.Contacts(),
		ProfileRepo: store.Profiles(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*discoveryService)
}

func resultNames(results []search.Result) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.DisplayName())
	}

	return names
}

func TestDiscoveryService_Search_RanksTiers(t *testing.T) {
	store := memory.New()
	caller := seedProfile(t, store, "joe", "Joe Caller", "+15550000000")
	john := seedProfile(t, store, "john", "John", "+15550000001")
	mary := seedProfile(t, store, "mary", "Mary", "+15550000002")
	joanna := seedProfile(t, store, "joanna", "Joanna", "+15550000003")
	seedProfile(t, store, "jonas", "Jonas", "")

	seedContact(t, store, caller.ID, "Johnny", "+15550000001", john)
	seedContact(t, store, caller.ID, "Mary", "+15550000002", mary)
	seedContact(t, store, mary.ID, "Joanna", "+15550000003", joanna)
	seedContact(t, store, mary.ID, "Joe", "+15550000000", caller)
	seedContact(t, store, caller.ID, "Joseph", "+15550000009", nil)

	svc := newDiscoveryServiceForStore(store)

	results, err := svc.Search(context.Background(), caller.ID, "jo")
	require.NoError(t, err)

	require.Equal(t, []string{"John", "Joanna", "Jonas", "Joseph"}, resultNames(results))
	assert.Equal(t, search.TierDirect, results[0].Tier())
	assert.Equal(t, search.TierSecondDegree, results[1].Tier())
	assert.Equal(t, search.TierFreeText, results[2].Tier())
	assert.Equal(t, search.TierUnregistered, results[3].Tier())

	unregistered, ok := results[3].(*search.Unregistered)
	require.True(t, ok)
	assert.Equal(t, "+15550000009", unregistered.Contact.PhoneNumber)

	for _, r := range results {
		if registered, ok := r.(*search.Registered); ok {
			assert.NotEqual(t, caller.ID, registered.Profile.ID)
		}
	}
}

func TestDiscoveryService_Search_DirectOutranksFreeText(t *testing.T) {
	store := memory.New()
	caller := seedProfile(t, store, "caller", "Caller", "")
	alice := seedProfile(t, store, "alice", "Alice", "+15550000010")
	seedContact(t, store, caller.ID, "Alice", "+15550000010", alice)

	svc := newDiscoveryServiceForStore(store)

	results, err := svc.Search(context.Background(), caller.ID, "ALI")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, search.TierDirect, results[0].Tier())
}

func TestDiscoveryService_Search_OrdersByNameThenID(t *testing.T) {
	store := memory.New()
	caller := seedProfile(t, store, "caller", "Caller", "")
	seedProfile(t, store, "sam2", "Sam", "")
	seedProfile(t, store, "sam1", "Sam", "")
	seedProfile(t, store, "samantha", "samantha", "")

	svc := newDiscoveryServiceForStore(store)

	results, err := svc.Search(context.Background(), caller.ID, "sam")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []string{"Sam", "Sam", "samantha"}, resultNames(results))
	assert.Less(t, results[0].SortID(), results[1].SortID())
}

func TestDiscoveryService_Search_EmptyTermSkipsStore(t *testing.T) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewDiscoveryService(DiscoveryServiceParams{
		ContactRepo: contactRepo,
		ProfileRepo: profileRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	for _, term := range []string{"", "   ", "\t"} {
		results, err := svc.Search(context.Background(), uuid.New(), term)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestDiscoveryService_Search_StoreErrorAborts(t *testing.T) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewDiscoveryService(DiscoveryServiceParams{
		ContactRepo: contactRepo,
		ProfileRepo: profileRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	callerID := uuid.New()
	storeErr := domainerrors.NewStoreUnavailableError(errors.New("connection reset"), "search profiles")

	contactRepo.EXPECT().FindLinkedByOwnerMatching(mock.Anything, callerID, "bob", callerID, 50).Return([]*entity.Contact{}, nil).Maybe()
	contactRepo.EXPECT().FindLinkedByOwner(mock.Anything, callerID, 100).Return([]*entity.Contact{}, nil).Maybe()
	contactRepo.EXPECT().FindUnlinkedByOwnerMatching(mock.Anything, callerID, "bob", 20).Return([]*entity.Contact{}, nil).Maybe()
	profileRepo.EXPECT().Search(mock.Anything, "bob", callerID, 20).Return(nil, storeErr)

	results, err := svc.Search(context.Background(), callerID, " bob ")
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Equal(t, domainerrors.KindStoreUnavailable, domainerrors.KindOf(err))
}

func TestDiscoveryService_Search_SecondDegreeErrorAborts(t *testing.T) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	svc := NewDiscoveryService(DiscoveryServiceParams{
		ContactRepo: contactRepo,
		ProfileRepo: profileRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	callerID := uuid.New()
	friend := &entity.Profile{ID: uuid.New(), Username: "friend", Name: "Friend"}
	friendID := friend.ID

	contactRepo.EXPECT().FindLinkedByOwner(mock.Anything, callerID, 100).Return([]*entity.Contact{
		{ID: uuid.New(), OwnerID: callerID, LinkedProfileID: &friendID, LinkedProfile: friend},
	}, nil)
	contactRepo.EXPECT().FindLinkedByOwnerMatching(mock.Anything, friendID, "zed", callerID, 10).
		Return(nil, domainerrors.NewStoreUnavailableError(errors.New("timeout"), "second degree"))
	contactRepo.EXPECT().FindLinkedByOwnerMatching(mock.Anything, callerID, "zed", callerID, 50).Return([]*entity.Contact{}, nil).Maybe()
	contactRepo.EXPECT().FindUnlinkedByOwnerMatching(mock.Anything, callerID, "zed", 20).Return([]*entity.Contact{}, nil).Maybe()
	profileRepo.EXPECT().Search(mock.Anything, "zed", callerID, 20).Return([]*entity.Profile{}, nil).Maybe()

	_, err := svc.Search(context.Background(), callerID, "zed")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindStoreUnavailable, domainerrors.KindOf(err))
}

func TestDiscoveryService_Search_FanoutIsBounded(t *testing.T) {
	store := memory.New()
	caller := seedProfile(t, store, "caller", "Caller", "")
	friend := seedProfile(t, store, "friend", "Friend", "+15550000100")
	seedContact(t, store, caller.ID, "Friend", "+15550000100", friend)

	for i := range 15 {
		p := seedProfile(t, store, "kim"+uuid.NewString()[:8], "Kim", "")
		seedContact(t, store, friend.ID, "Kim", fmt.Sprintf("+1555000%04d", 200+i), p)
	}

	svc := newDiscoveryServiceForStore(store)

	results, err := svc.Search(context.Background(), caller.ID, "kim")
	require.NoError(t, err)

	secondDegree := 0
	for _, r := range results {
		if r.Tier() == search.TierSecondDegree {
			secondDegree++
		}
	}
	assert.Equal(t, 10, secondDegree)
}

func TestDiscoveryService_Search_DirectIgnoresExpansionCap(t *testing.T) {
	store := memory.New()
	caller := seedProfile(t, store, "caller", "Caller", "")

	for i := range 3 {
		phone := fmt.Sprintf("+1555000%04d", 300+i)
		p := seedProfile(t, store, fmt.Sprintf("aaron%d", i), fmt.Sprintf("Aaron %d", i), phone)
		seedContact(t, store, caller.ID, p.Name, phone, p)
	}
	zoe := seedProfile(t, store, "zoe", "Zoe", "+15550000399")
	seedContact(t, store, caller.ID, "Zoe", "+15550000399", zoe)

	zoey := seedProfile(t, store, "zoey", "Zoey", "+15550000400")
	seedContact(t, store, zoe.ID, "Zoey", "+15550000400", zoey)

	svc := newDiscoveryServiceForStore(store)
	svc.limits.MaxDirectContacts = 3

	results, err := svc.Search(context.Background(), caller.ID, "zoe")
	require.NoError(t, err)

	tiers := make(map[string]search.Tier, len(results))
	for _, r := range results {
		tiers[r.DisplayName()] = r.Tier()
	}
	assert.Equal(t, search.TierDirect, tiers["Zoe"])
	// Zoe sorts past the expansion cap, so her contacts are only reachable by free text.
	assert.Equal(t, search.TierFreeText, tiers["Zoey"])
}
