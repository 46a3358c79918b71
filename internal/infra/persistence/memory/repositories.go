package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"mutuals/internal/domain/entity"
	"mutuals/internal/domain/repository"
	"mutuals/internal/domain/search"
	"mutuals/internal/errors"

	"github.com/google/uuid"
)

// errCheckConstraint mirrors the relational CHECK constraints.
var errCheckConstraint = errors.New("check constraint violated")

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

func cloneProfile(p *entity.Profile) *entity.Profile {
	c := *p

	return &c
}

func byDisplayNameThenID(a, b *entity.Profile) int {
	return cmp.Or(
		cmp.Compare(search.Fold(a.DisplayName()), search.Fold(b.DisplayName())),
		cmp.Compare(a.ID.String(), b.ID.String()),
	)
}

// --- profiles ---

type profileRepository struct {
	store *Store
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, bool, error) {
	if err := checkContext(ctx); err != nil {
		return nil, false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.data.profiles[id]
	if !ok {
		return nil, false, nil
	}

	return cloneProfile(p), true, nil
}

func (r *profileRepository) FindByExternalIdentity(ctx context.Context, externalIdentity string) (*entity.Profile, bool, error) {
	return r.findFirst(ctx, func(p *entity.Profile) bool {
		return p.ExternalIdentity == externalIdentity
	})
}

func (r *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, bool, error) {
	return r.findFirst(ctx, func(p *entity.Profile) bool {
		return strings.EqualFold(p.Username, username)
	})
}

func (r *profileRepository) findFirst(ctx context.Context, match func(*entity.Profile) bool) (*entity.Profile, bool, error) {
	if err := checkContext(ctx); err != nil {
		return nil, false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.data.profiles {
		if match(p) {
			return cloneProfile(p), true, nil
		}
	}

	return nil, false, nil
}

func (r *profileRepository) FindByPhones(ctx context.Context, phones []string) ([]*entity.Profile, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*entity.Profile{}
	for _, p := range r.store.data.profiles {
		if phone, ok := p.PhoneNumber(); ok && slices.Contains(phones, phone) {
			result = append(result, cloneProfile(p))
		}
	}
	slices.SortFunc(result, byDisplayNameThenID)

	return result, nil
}

func (r *profileRepository) Search(ctx context.Context, term string, excludeID uuid.UUID, limit int) ([]*entity.Profile, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	matcher, ok := search.NewMatcher(term)
	if !ok {
		return []*entity.Profile{}, nil
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*entity.Profile{}
	for _, p := range r.store.data.profiles {
		if p.ID != excludeID && matcher.Match(p.Name, p.Username) {
			result = append(result, cloneProfile(p))
		}
	}
	slices.SortFunc(result, byDisplayNameThenID)

	return paginate(result, limit, 0), nil
}

// --- contacts ---

type contactRepository struct {
	store *Store
}

// withProfile copies c and attaches its linked profile. Callers hold the read lock.
func (r *contactRepository) withProfile(c *entity.Contact) *entity.Contact {
	out := *c
	out.LinkedProfile = nil
	if c.LinkedProfileID != nil {
		if p, ok := r.store.data.profiles[*c.LinkedProfileID]; ok {
			out.LinkedProfile = cloneProfile(p)
		}
	}

	return &out
}

func (r *contactRepository) list(ctx context.Context, keep func(*entity.Contact) bool) ([]*entity.Contact, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*entity.Contact{}
	for _, c := range r.store.data.contacts {
		withProfile := r.withProfile(c)
		if keep(withProfile) {
			result = append(result, withProfile)
		}
	}
	slices.SortFunc(result, func(a, b *entity.Contact) int {
		return cmp.Or(
			cmp.Compare(search.Fold(a.DisplayName), search.Fold(b.DisplayName)),
			cmp.Compare(a.ID.String(), b.ID.String()),
		)
	})

	return result, nil
}

func (r *contactRepository) FindLinkedByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.Contact, error) {
	result, err := r.list(ctx, func(c *entity.Contact) bool {
		return c.OwnerID == ownerID && c.LinkedProfile != nil
	})
	if err != nil {
		return nil, err
	}

	return paginate(result, limit, 0), nil
}

func (r *contactRepository) FindLinkedByOwnerMatching(
	ctx context.Context,
	ownerID uuid.UUID,
	term string,
	excludeProfileID uuid.UUID,
	limit int,
) ([]*entity.Contact, error) {
	matcher, ok := search.NewMatcher(term)
	if !ok {
		return []*entity.Contact{}, nil
	}

	result, err := r.list(ctx, func(c *entity.Contact) bool {
		return c.OwnerID == ownerID &&
			c.LinkedProfile != nil &&
			c.LinkedProfile.ID != excludeProfileID &&
			matcher.Match(c.LinkedProfile.Name, c.LinkedProfile.Username)
	})
	if err != nil {
		return nil, err
	}

	return paginate(result, limit, 0), nil
}

func (r *contactRepository) FindUnlinkedByOwnerMatching(ctx context.Context, ownerID uuid.UUID, term string, limit int) ([]*entity.Contact, error) {
	matcher, ok := search.NewMatcher(term)
	if !ok {
		return []*entity.Contact{}, nil
	}

	result, err := r.list(ctx, func(c *entity.Contact) bool {
		return c.OwnerID == ownerID && c.LinkedProfileID == nil && matcher.Match(c.DisplayName)
	})
	if err != nil {
		return nil, err
	}

	return paginate(result, limit, 0), nil
}

func (r *contactRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Contact, error) {
	result, err := r.list(ctx, func(c *entity.Contact) bool {
		return c.OwnerID == ownerID
	})
	if err != nil {
		return nil, err
	}

	return paginate(result, limit, offset), nil
}

func (r *contactRepository) Upsert(ctx context.Context, contacts []*entity.Contact) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	for _, c := range contacts {
		key := contactKey{owner: c.OwnerID, phone: c.PhoneNumber}
		stored := *c
		stored.LinkedProfile = nil
		stored.UpdatedAt = now

		if existing, ok := r.store.data.contacts[key]; ok {
			stored.ID = existing.ID
			stored.CreatedAt = existing.CreatedAt
		} else {
			if stored.ID == uuid.Nil {
				stored.ID = uuid.Must(uuid.NewV7())
			}
			stored.CreatedAt = now
		}

		r.store.data.contacts[key] = &stored
		c.ID = stored.ID
	}

	return nil
}

// --- likes ---

type likeRepository struct {
	store *Store
}

func (r *likeRepository) Exists(ctx context.Context, likerID, likedID uuid.UUID) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.data.likes[pairKey{a: likerID, b: likedID}]

	return ok, nil
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if like.LikerID == like.LikedID {
		return errors.Wrap(errCheckConstraint, "liker_id <> liked_id")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := pairKey{a: like.LikerID, b: like.LikedID}
	if _, ok := r.store.data.likes[key]; ok {
		return repository.ErrDuplicateLike
	}

	stored := *like
	r.store.data.likes[key] = &stored

	return nil
}

func (r *likeRepository) Delete(ctx context.Context, likerID, likedID uuid.UUID) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := pairKey{a: likerID, b: likedID}
	if _, ok := r.store.data.likes[key]; !ok {
		return false, nil
	}
	delete(r.store.data.likes, key)

	return true, nil
}

func (r *likeRepository) ExistsUnregistered(ctx context.Context, likerPhone, likedPhone string) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.data.unregisteredLikes[phonePairKey{liker: likerPhone, liked: likedPhone}]

	return ok, nil
}

func (r *likeRepository) CreateUnregistered(ctx context.Context, like *entity.UnregisteredLike) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := phonePairKey{liker: like.LikerPhone, liked: like.LikedPhone}
	if _, ok := r.store.data.unregisteredLikes[key]; ok {
		return repository.ErrDuplicateUnregisteredLike
	}

	stored := *like
	r.store.data.unregisteredLikes[key] = &stored

	return nil
}

func (r *likeRepository) DeleteUnregistered(ctx context.Context, likerPhone, likedPhone string) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := phonePairKey{liker: likerPhone, liked: likedPhone}
	if _, ok := r.store.data.unregisteredLikes[key]; !ok {
		return false, nil
	}
	delete(r.store.data.unregisteredLikes, key)

	return true, nil
}

// --- matches ---

type matchRepository struct {
	store *Store
}

func orderedKey(x, y uuid.UUID) pairKey {
	a, b := entity.OrderedPair(x, y)

	return pairKey{a: a, b: b}
}

func (r *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if match.UserA.String() >= match.UserB.String() {
		return errors.Wrap(errCheckConstraint, "user_a < user_b")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := pairKey{a: match.UserA, b: match.UserB}
	if _, ok := r.store.data.matches[key]; ok {
		return repository.ErrDuplicateMatch
	}

	stored := *match
	r.store.data.matches[key] = &stored

	return nil
}

func (r *matchRepository) FindByPair(ctx context.Context, x, y uuid.UUID) (*entity.Match, bool, error) {
	if err := checkContext(ctx); err != nil {
		return nil, false, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.data.matches[orderedKey(x, y)]
	if !ok {
		return nil, false, nil
	}
	out := *m

	return &out, true, nil
}

func (r *matchRepository) DeleteByPair(ctx context.Context, x, y uuid.UUID) (bool, error) {
	if err := checkContext(ctx); err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := orderedKey(x, y)
	if _, ok := r.store.data.matches[key]; !ok {
		return false, nil
	}
	delete(r.store.data.matches, key)

	return true, nil
}

func (r *matchRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*entity.Match{}
	for _, m := range r.store.data.matches {
		if m.Involves(userID) {
			out := *m
			result = append(result, &out)
		}
	}
	slices.SortFunc(result, func(a, b *entity.Match) int {
		return cmp.Or(b.MatchedAt.Compare(a.MatchedAt), cmp.Compare(b.ID.String(), a.ID.String()))
	})

	return paginate(result, limit, offset), nil
}

// --- notifications ---

type notificationRepository struct {
	store *Store
}

func (r *notificationRepository) Append(ctx context.Context, notifications []*entity.Notification) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, n := range notifications {
		stored := *n
		r.store.data.notifications = append(r.store.data.notifications, &stored)
	}

	return nil
}

func (r *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*entity.Notification{}
	for _, n := range r.store.data.notifications {
		if n.UserID == userID {
			out := *n
			result = append(result, &out)
		}
	}
	slices.SortStableFunc(result, func(a, b *entity.Notification) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID.String(), a.ID.String()))
	})

	return paginate(result, limit, offset), nil
}
