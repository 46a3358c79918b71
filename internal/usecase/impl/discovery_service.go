package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"mutuals/config"
	deliverycontext "mutuals/internal/delivery/context"
	"mutuals/internal/domain/repository"
	"mutuals/internal/domain/search"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type discoveryService struct {
	contactRepo repository.ContactRepository
	profileRepo repository.ProfileRepository
	limits      *config.DiscoveryConfig
	logger      *slog.Logger
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	ProfileRepo repository.ProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDiscoveryService creates a new discovery service instance
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		contactRepo: params.ContactRepo,
		profileRepo: params.ProfileRepo,
		limits:      params.Config.Discovery,
		logger:      params.Logger,
	}
}

// candidateSet collects results from concurrent store queries
type candidateSet struct {
	mu      sync.Mutex
	results []search.Result
}

func (c *candidateSet) add(results ...search.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results = append(c.results, results...)
}

// Search unions the Direct, SecondDegree, FreeText and Unregistered tiers,
// then deduplicates and orders them. The first store error aborts the search.
func (s *discoveryService) Search(ctx context.Context, callerID uuid.UUID, term string) ([]search.Result, error) {
	matcher, ok := search.NewMatcher(term)
	if !ok {
		return []search.Result{}, nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	storeTerm := strings.TrimSpace(term)
	candidates := &candidateSet{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return s.collectDirect(groupCtx, callerID, storeTerm, matcher, candidates)
	})
	group.Go(func() error {
		return s.collectSecondDegree(groupCtx, callerID, storeTerm, matcher, candidates)
	})
	group.Go(func() error {
		return s.collectFreeText(groupCtx, callerID, storeTerm, matcher, candidates)
	})
	group.Go(func() error {
		return s.collectUnregistered(groupCtx, callerID, storeTerm, matcher, candidates)
	})

	if err := group.Wait(); err != nil {
		logger.Warn("Search aborted", slog.String("caller_id", callerID.String()), slog.Any("error", err))

		return nil, err
	}

	ranked := search.Rank(candidates.results)

	logger.Debug("Search completed",
		slog.String("caller_id", callerID.String()),
		slog.Int("candidates", len(candidates.results)),
		slog.Int("results", len(ranked)),
	)

	return ranked, nil
}

// collectDirect adds the caller's own linked contacts whose profile matches,
// independent of how many contacts the caller has.
func (s *discoveryService) collectDirect(
	ctx context.Context,
	callerID uuid.UUID,
	storeTerm string,
	matcher *search.Matcher,
	candidates *candidateSet,
) error {
	contacts, err := s.contactRepo.FindLinkedByOwnerMatching(ctx, callerID, storeTerm, callerID, s.limits.DirectMatchLimit)
	if err != nil {
		return errors.Wrap(err, "failed to find direct contacts")
	}

	for _, contact := range contacts {
		profile := contact.LinkedProfile
		if profile == nil || profile.ID == callerID || !matcher.Match(profile.Name, profile.Username) {
			continue
		}

		candidates.add(search.NewRegistered(profile, search.TierDirect))
	}

	return nil
}

// collectSecondDegree expands up to MaxDirectContacts direct contacts one hop
// further, taking at most SecondDegreeFanout matches from each.
func (s *discoveryService) collectSecondDegree(
	ctx context.Context,
	callerID uuid.UUID,
	storeTerm string,
	matcher *search.Matcher,
	candidates *candidateSet,
) error {
	direct, err := s.contactRepo.FindLinkedByOwner(ctx, callerID, s.limits.MaxDirectContacts)
	if err != nil {
		return errors.Wrap(err, "failed to list direct contacts")
	}

	fanout, fanoutCtx := errgroup.WithContext(ctx)
	fanout.SetLimit(s.limits.Concurrency)

	visited := make(map[uuid.UUID]struct{}, len(direct))
	for _, contact := range direct {
		if !contact.IsLinked() || *contact.LinkedProfileID == callerID {
			continue
		}

		ownerID := *contact.LinkedProfileID
		if _, seen := visited[ownerID]; seen {
			continue
		}
		visited[ownerID] = struct{}{}

		fanout.Go(func() error {
			return s.collectFriendOfFriend(fanoutCtx, callerID, ownerID, storeTerm, matcher, candidates)
		})
	}

	return fanout.Wait()
}

func (s *discoveryService) collectFriendOfFriend(
	ctx context.Context,
	callerID, ownerID uuid.UUID,
	storeTerm string,
	matcher *search.Matcher,
	candidates *candidateSet,
) error {
	contacts, err := s.contactRepo.FindLinkedByOwnerMatching(ctx, ownerID, storeTerm, callerID, s.limits.SecondDegreeFanout)
	if err != nil {
		return errors.Wrap(err, "failed to find second degree contacts")
	}

	for _, contact := range contacts {
		profile := contact.LinkedProfile
		if profile == nil || profile.ID == callerID || !matcher.Match(profile.Name, profile.Username) {
			continue
		}

		candidates.add(search.NewRegistered(profile, search.TierSecondDegree))
	}

	return nil
}

func (s *discoveryService) collectFreeText(
	ctx context.Context,
	callerID uuid.UUID,
	storeTerm string,
	matcher *search.Matcher,
	candidates *candidateSet,
) error {
	profiles, err := s.profileRepo.Search(ctx, storeTerm, callerID, s.limits.FreeTextLimit)
	if err != nil {
		return errors.Wrap(err, "failed to search profiles")
	}

	for _, profile := range profiles {
		if profile.ID == callerID || !matcher.Match(profile.Name, profile.Username) {
			continue
		}

		candidates.add(search.NewRegistered(profile, search.TierFreeText))
	}

	return nil
}

func (s *discoveryService) collectUnregistered(
	ctx context.Context,
	callerID uuid.UUID,
	storeTerm string,
	matcher *search.Matcher,
	candidates *candidateSet,
) error {
	contacts, err := s.contactRepo.FindUnlinkedByOwnerMatching(ctx, callerID, storeTerm, s.limits.UnregisteredLimit)
	if err != nil {
		return errors.Wrap(err, "failed to find unregistered contacts")
	}

	for _, contact := range contacts {
		if contact.IsLinked() || !matcher.Match(contact.DisplayName) {
			continue
		}

		candidates.add(search.NewUnregistered(contact))
	}

	return nil
}
