// Package memory is a process-local implementation of the repository ports.
// It enforces the same uniqueness constraints as the relational schema and is
// used for local development and scenario tests.
package memory

import (
	"context"
	"maps"
	"strings"
	"sync"

	"mutuals/internal/domain/entity"
	"mutuals/internal/domain/repository"
	"mutuals/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateUsername is returned by PutProfile for a username already taken.
var ErrDuplicateUsername = errors.New("username already exists")

type pairKey struct {
	a, b uuid.UUID
}

type phonePairKey struct {
	liker, liked string
}

type contactKey struct {
	owner uuid.UUID
	phone string
}

type state struct {
	profiles          map[uuid.UUID]*entity.Profile
	contacts          map[contactKey]*entity.Contact
	likes             map[pairKey]*entity.Like
	unregisteredLikes map[phonePairKey]*entity.UnregisteredLike
	matches           map[pairKey]*entity.Match
	notifications     []*entity.Notification
}

func (st *state) clone() *state {
	return &state{
		profiles:          maps.Clone(st.profiles),
		contacts:          maps.Clone(st.contacts),
		likes:             maps.Clone(st.likes),
		unregisteredLikes: maps.Clone(st.unregisteredLikes),
		matches:           maps.Clone(st.matches),
		notifications:     append([]*entity.Notification(nil), st.notifications...),
	}
}

// Store holds every table in memory behind a single RWMutex.
// Stored entities are never mutated in place, so snapshots can share them.
type Store struct {
	mu   sync.RWMutex
	data *state

	// txMu serializes Execute calls.
	txMu sync.Mutex
}

// New creates an empty store.
func New() *Store {
	return &Store{
		data: &state{
			profiles:          make(map[uuid.UUID]*entity.Profile),
			contacts:          make(map[contactKey]*entity.Contact),
			likes:             make(map[pairKey]*entity.Like),
			unregisteredLikes: make(map[phonePairKey]*entity.UnregisteredLike),
			matches:           make(map[pairKey]*entity.Match),
		},
	}
}

// PutProfile inserts or replaces a profile. Profile registration lives outside
// this service, so this is how development data and tests seed profiles.
func (s *Store) PutProfile(profile *entity.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.data.profiles {
		if id != profile.ID && strings.EqualFold(existing.Username, profile.Username) {
			return errors.Wrapf(ErrDuplicateUsername, "username %q", profile.Username)
		}
	}

	stored := *profile
	s.data.profiles[profile.ID] = &stored

	return nil
}

// Profiles returns the profile repository.
func (s *Store) Profiles() repository.ProfileRepository {
	return &profileRepository{store: s}
}

// Contacts returns the contact repository.
func (s *Store) Contacts() repository.ContactRepository {
	return &contactRepository{store: s}
}

// Likes returns the like repository.
func (s *Store) Likes() repository.LikeRepository {
	return &likeRepository{store: s}
}

// Matches returns the match repository.
func (s *Store) Matches() repository.MatchRepository {
	return &matchRepository{store: s}
}

// Notifications returns the notification repository.
func (s *Store) Notifications() repository.NotificationRepository {
	return &notificationRepository{store: s}
}

// TransactionManager returns a transaction manager over the store.
func (s *Store) TransactionManager() repository.TransactionManager {
	return &transactionManager{store: s}
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return f.store.Profiles()
}

func (f *repositoryFactory) NewContactRepository() repository.ContactRepository {
	return f.store.Contacts()
}

func (f *repositoryFactory) NewLikeRepository() repository.LikeRepository {
	return f.store.Likes()
}

func (f *repositoryFactory) NewMatchRepository() repository.MatchRepository {
	return f.store.Matches()
}

func (f *repositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return f.store.Notifications()
}

// Execute runs fn serialized with other transactions. On error the store is
// restored to the snapshot taken before fn ran, including writes made outside
// the transaction meanwhile.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	tm.store.mu.RLock()
	snapshot := tm.store.data.clone()
	tm.store.mu.RUnlock()

	rollback := func() {
		tm.store.mu.Lock()
		tm.store.data = snapshot
		tm.store.mu.Unlock()
	}

	defer func() {
		if r := recover(); r != nil {
			rollback()
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		rollback()

		return err
	}

	return nil
}
