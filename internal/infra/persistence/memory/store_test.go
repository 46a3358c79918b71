package memory

import (
	"context"
	"testing"
	"time"

	"mutuals/internal/domain/entity"
	"mutuals/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutProfile_UsernameUnique(t *testing.T) {
	store := New()

	require.NoError(t, store.PutProfile(&entity.Profile{ID: uuid.New(), Username: "Alice"}))
	err := store.PutProfile(&entity.Profile{ID: uuid.New(), Username: "alice"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestLikeRepository_Constraints(t *testing.T) {
	store := New()
	repo := store.Likes()
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, repo.Create(ctx, entity.NewLike(a, b, time.Now())))
	assert.ErrorIs(t, repo.Create(ctx, entity.NewLike(a, b, time.Now())), repository.ErrDuplicateLike)
	assert.ErrorIs(t, repo.Create(ctx, entity.NewLike(a, a, time.Now())), errCheckConstraint)

	deleted, err := repo.Delete(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMatchRepository_PairIsUnordered(t *testing.T) {
	store := New()
	repo := store.Matches()
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	require.NoError(t, repo.Create(ctx, entity.NewMatch(a, b, time.Now())))
	assert.ErrorIs(t, repo.Create(ctx, entity.NewMatch(b, a, time.Now())), repository.ErrDuplicateMatch)

	x, y := entity.OrderedPair(a, b)
	assert.ErrorIs(t, repo.Create(ctx, &entity.Match{ID: uuid.New(), UserA: y, UserB: x}), errCheckConstraint)

	m, found, err := repo.FindByPair(ctx, b, a)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, x, m.UserA)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := New()
	ctx := context.Background()
	owner := uuid.New()
	failure := errors.New("abort")

	err := store.TransactionManager().Execute(ctx, func(f repository.RepositoryFactory) error {
		contact := &entity.Contact{OwnerID: owner, PhoneNumber: "+15550000001", DisplayName: "A"}
		if err := f.NewContactRepository().Upsert(ctx, []*entity.Contact{contact}); err != nil {
			return err
		}

		return failure
	})
	assert.ErrorIs(t, err, failure)

	contacts, err := store.Contacts().FindByOwner(ctx, owner, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestContactRepository_LinkedQueries(t *testing.T) {
	store := New()
	ctx := context.Background()
	owner := uuid.New()
	profile := &entity.Profile{ID: uuid.New(), Username: "bob", Name: "Bobby"}
	require.NoError(t, store.PutProfile(profile))
	profileID := profile.ID

	require.NoError(t, store.Contacts().Upsert(ctx, []*entity.Contact{
		{OwnerID: owner, PhoneNumber: "+15550000001", DisplayName: "Bob", LinkedProfileID: &profileID},
		{OwnerID: owner, PhoneNumber: "+15550000002", DisplayName: "Bobcat"},
	}))

	linked, err := store.Contacts().FindLinkedByOwner(ctx, owner, 10)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "Bobby", linked[0].LinkedProfile.Name)

	matching, err := store.Contacts().FindLinkedByOwnerMatching(ctx, owner, "bob", profileID, 10)
	require.NoError(t, err)
	assert.Empty(t, matching)

	unlinked, err := store.Contacts().FindUnlinkedByOwnerMatching(ctx, owner, "BOB", 10)
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	assert.Equal(t, "Bobcat", unlinked[0].DisplayName)
}

func TestRepositories_HonourCancellation(t *testing.T) {
	store := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Likes().Exists(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}
