// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mutuals/config"
	deliverycontext "mutuals/internal/delivery/context"
	domainerrors "mutuals/internal/domain/errors"
	"mutuals/internal/domain/identity"
	"mutuals/internal/domain/repository"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

type identityEntry struct {
	userID    uuid.UUID
	found     bool
	expiresAt time.Time // only meaningful for negative entries
}

type lookupResult struct {
	userID uuid.UUID
	found  bool
}

type identityService struct {
	profileRepo repository.ProfileRepository
	clock       clockwork.Clock
	negativeTTL time.Duration
	logger      *slog.Logger

	mu         sync.Mutex
	entries    map[string]identityEntry
	generation uint64
	lookups    singleflight.Group
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Clock       clockwork.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewIdentityService creates a new identity service instance
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		profileRepo: params.ProfileRepo,
		clock:       params.Clock,
		negativeTTL: params.Config.Identity.NegativeCacheTTL,
		logger:      params.Logger,
		entries:     make(map[string]identityEntry),
	}
}

func (s *identityService) Resolve(externalID string) uuid.UUID {
	return identity.Resolve(externalID)
}

// EnsureProfile serves positive entries until invalidated and negative entries
// until their window lapses. Store failures are never cached.
func (s *identityService) EnsureProfile(ctx context.Context, externalID string) (uuid.UUID, bool, error) {
	if entry, ok := s.cached(externalID); ok {
		return entry.userID, entry.found, nil
	}

	// Waiters share one lookup, so it must not inherit any single caller's cancellation.
	flight := s.lookups.DoChan(externalID, func() (any, error) {
		return s.lookup(context.WithoutCancel(ctx), externalID)
	})

	select {
	case <-ctx.Done():
		return uuid.Nil, false, errors.WithStack(ctx.Err())
	case res := <-flight:
		if res.Err != nil {
			return uuid.Nil, false, res.Err
		}

		result := res.Val.(lookupResult)

		return result.userID, result.found, nil
	}
}

func (s *identityService) OpenSession(ctx context.Context, externalID string) (*usecase.Session, error) {
	userID, found, err := s.EnsureProfile(ctx, externalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure profile")
	}

	if !found {
		return nil, domainerrors.ErrProfileNotRegistered
	}

	return &usecase.Session{ExternalID: externalID, UserID: userID}, nil
}

func (s *identityService) Invalidate(externalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, externalID)
	s.generation++
	s.lookups.Forget(externalID)
}

func (s *identityService) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.entries)
	s.generation++
}

func (s *identityService) cached(externalID string) (identityEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[externalID]
	if !ok {
		return identityEntry{}, false
	}

	if entry.found || s.clock.Now().Before(entry.expiresAt) {
		return entry, true
	}

	delete(s.entries, externalID)

	return identityEntry{}, false
}

func (s *identityService) lookup(ctx context.Context, externalID string) (lookupResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	s.mu.Lock()
	startGeneration := s.generation
	s.mu.Unlock()

	resolved := identity.Resolve(externalID)
	profile, found, err := s.profileRepo.FindByExternalIdentity(ctx, resolved.String())
	if err != nil {
		logger.Warn("Profile lookup failed", slog.String("identity", resolved.String()), slog.Any("error", err))

		return lookupResult{}, errors.Wrap(err, "failed to find profile by external identity")
	}

	entry := identityEntry{found: found}
	if found {
		entry.userID = profile.ID
	} else {
		entry.expiresAt = s.clock.Now().Add(s.negativeTTL)
	}

	s.mu.Lock()
	// An invalidation while the lookup was in flight makes its answer stale.
	if s.generation == startGeneration {
		s.entries[externalID] = entry
	}
	s.mu.Unlock()

	return lookupResult{userID: entry.userID, found: found}, nil
}
