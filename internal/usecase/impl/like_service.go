package impl

import (
	"context"
	"log/slog"
	"time"

	"mutuals/config"
	deliverycontext "mutuals/internal/delivery/context"
	"mutuals/internal/domain/entity"
	domainerrors "mutuals/internal/domain/errors"
	"mutuals/internal/domain/phone"
	"mutuals/internal/domain/repository"
	"mutuals/internal/domain/service"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Template arguments available to sms.inviteTemplate
const (
	inviteArgInviterName     = "InviterName"
	inviteArgInviterUsername = "InviterUsername"
	inviteArgInviteURL       = "InviteURL"
)

type likeService struct {
	likeRepo           repository.LikeRepository
	matchRepo          repository.MatchRepository
	notificationRepo   repository.NotificationRepository
	profileRepo        repository.ProfileRepository
	txManager          repository.TransactionManager
	smsNotifier        service.SMSNotifier
	clock              clockwork.Clock
	unlikePolicy       string
	smsConfig          *config.SMSConfig
	defaultCountryCode string
	logger             *slog.Logger
}

// LikeServiceParams holds dependencies for LikeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	LikeRepo         repository.LikeRepository
	MatchRepo        repository.MatchRepository
	NotificationRepo repository.NotificationRepository
	ProfileRepo      repository.ProfileRepository
	TxManager        repository.TransactionManager
	SMSNotifier      service.SMSNotifier
	Clock            clockwork.Clock
	Config           *config.Config
	Logger           *slog.Logger
}

// NewLikeService creates a new like service instance
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		likeRepo:           params.LikeRepo,
		matchRepo:          params.MatchRepo,
		notificationRepo:   params.NotificationRepo,
		profileRepo:        params.ProfileRepo,
		txManager:          params.TxManager,
		smsNotifier:        params.SMSNotifier,
		clock:              params.Clock,
		unlikePolicy:       params.Config.Matching.UnlikePolicy,
		smsConfig:          params.Config.SMS,
		defaultCountryCode: params.Config.Discovery.DefaultCountryCode,
		logger:             params.Logger,
	}
}

// ToggleLike flips the like from likerID to likedID. Once issued it runs to
// completion even if the caller goes away.
func (s *likeService) ToggleLike(ctx context.Context, likerID, likedID uuid.UUID) (*usecase.ToggleLikeResult, error) {
	ctx = context.WithoutCancel(ctx)

	if likerID == likedID {
		return nil, domainerrors.ErrSelfLike
	}

	if _, found, err := s.profileRepo.FindByID(ctx, likedID); err != nil {
		return nil, errors.Wrap(err, "failed to find liked profile")
	} else if !found {
		return nil, domainerrors.ErrProfileNotFound
	}

	exists, err := s.likeRepo.Exists(ctx, likerID, likedID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check like")
	}

	if exists {
		return s.unlike(ctx, likerID, likedID)
	}

	return s.like(ctx, likerID, likedID)
}

func (s *likeService) like(ctx context.Context, likerID, likedID uuid.UUID) (*usecase.ToggleLikeResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("liker_id", likerID.String()),
		slog.String("liked_id", likedID.String()),
	)
	now := s.clock.Now()

	err := s.likeRepo.Create(ctx, entity.NewLike(likerID, likedID, now))
	if errors.Is(err, repository.ErrDuplicateLike) {
		logger.Info("Concurrent like detected, reconciling")

		return s.reconcileLike(ctx, likerID, likedID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create like")
	}

	created, matched, err := s.promote(ctx, likerID, likedID, now)
	if err != nil {
		// No match was observed, so the like must not outlive the failed check.
		if _, delErr := s.likeRepo.Delete(ctx, likerID, likedID); delErr != nil {
			logger.Error("Failed to compensate like after reciprocity failure", slog.Any("error", delErr))
		}

		return nil, err
	}

	result := &usecase.ToggleLikeResult{Liked: true, IsMatch: matched}

	switch {
	case !matched:
		result.NotificationFailed = !s.notify(ctx, logger, entity.NewLikeNotification(likerID, likedID, now))
	case created != nil:
		logger.Info("Match created", slog.String("match_id", created.ID.String()))
		result.NotificationFailed = !s.notify(ctx, logger, entity.NewMatchNotifications(created, now)...)
	}

	return result, nil
}

// reconcileLike handles losing an insert race: another writer realised the same
// intent, so the toggle converges to liked without emitting notifications.
func (s *likeService) reconcileLike(ctx context.Context, likerID, likedID uuid.UUID) (*usecase.ToggleLikeResult, error) {
	exists, err := s.likeRepo.Exists(ctx, likerID, likedID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read like")
	}
	if !exists {
		return nil, domainerrors.ErrConflict.WithDetails("like changed concurrently")
	}

	_, matched, err := s.matchRepo.FindByPair(ctx, likerID, likedID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find match")
	}

	return &usecase.ToggleLikeResult{Liked: true, IsMatch: matched}, nil
}

// promote creates the match when the reciprocal like exists. created is nil
// when there is no match or another writer created it first; a duplicate insert
// is proof enough that the match exists.
func (s *likeService) promote(ctx context.Context, likerID, likedID uuid.UUID, now time.Time) (created *entity.Match, matched bool, err error) {
	reciprocal, err := s.likeRepo.Exists(ctx, likedID, likerID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to check reciprocal like")
	}
	if !reciprocal {
		return nil, false, nil
	}

	match := entity.NewMatch(likerID, likedID, now)
	err = s.matchRepo.Create(ctx, match)
	switch {
	case err == nil:
		return match, true, nil
	case errors.Is(err, repository.ErrDuplicateMatch):
		return nil, true, nil
	default:
		return nil, false, errors.Wrap(err, "failed to create match")
	}
}

func (s *likeService) unlike(ctx context.Context, likerID, likedID uuid.UUID) (*usecase.ToggleLikeResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("liker_id", likerID.String()),
		slog.String("liked_id", likedID.String()),
	)

	if s.unlikePolicy == config.UnlikePolicyDissolve {
		return s.unlikeAndDissolve(ctx, logger, likerID, likedID)
	}

	if err := deleteLike(ctx, logger, s.likeRepo, likerID, likedID); err != nil {
		return nil, err
	}

	// The unlike has committed; a failed read must not make the caller revert it.
	_, matched, err := s.matchRepo.FindByPair(ctx, likerID, likedID)
	if err != nil {
		logger.Warn("Failed to read match after unlike", slog.Any("error", err))

		return &usecase.ToggleLikeResult{Liked: false}, nil
	}

	return &usecase.ToggleLikeResult{Liked: false, IsMatch: matched}, nil
}

// unlikeAndDissolve removes the like and any match on the pair atomically, so a
// failure leaves both in place.
func (s *likeService) unlikeAndDissolve(ctx context.Context, logger *slog.Logger, likerID, likedID uuid.UUID) (*usecase.ToggleLikeResult, error) {
	dissolved := false
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := deleteLike(ctx, logger, repoFactory.NewLikeRepository(), likerID, likedID); err != nil {
			return err
		}

		deleted, err := repoFactory.NewMatchRepository().DeleteByPair(ctx, likerID, likedID)
		if err != nil {
			return errors.Wrap(err, "failed to dissolve match")
		}
		dissolved = deleted

		return nil
	})
	if err != nil {
		return nil, err
	}

	if dissolved {
		logger.Info("Match dissolved by unlike")
	}

	return &usecase.ToggleLikeResult{Liked: false}, nil
}

// deleteLike removes the like. Losing the delete to a concurrent unlike is
// fine; a like that is still there afterwards is a conflict.
func deleteLike(ctx context.Context, logger *slog.Logger, likeRepo repository.LikeRepository, likerID, likedID uuid.UUID) error {
	deleted, err := likeRepo.Delete(ctx, likerID, likedID)
	if err != nil {
		return errors.Wrap(err, "failed to delete like")
	}
	if deleted {
		return nil
	}

	logger.Info("Concurrent unlike detected, reconciling")

	exists, err := likeRepo.Exists(ctx, likerID, likedID)
	if err != nil {
		return errors.Wrap(err, "failed to re-read like")
	}
	if exists {
		return domainerrors.ErrConflict.WithDetails("like changed concurrently")
	}

	return nil
}

// notify appends notifications best-effort; a failure is logged and never
// rolls back the relational change that caused it.
func (s *likeService) notify(ctx context.Context, logger *slog.Logger, notifications ...*entity.Notification) bool {
	if err := s.notificationRepo.Append(ctx, notifications); err != nil {
		logger.Error("Failed to append notifications",
			slog.Int("count", len(notifications)),
			slog.Any("error", domainerrors.NewNotifierError(err, "append notifications")),
		)

		return false
	}

	return true
}

// ToggleUnregisteredLike flips the like from the caller's phone to targetPhone
// and invites the target by SMS when the like is created.
func (s *likeService) ToggleUnregisteredLike(ctx context.Context, likerID uuid.UUID, targetPhone string) (*usecase.ToggleUnregisteredLikeResult, error) {
	ctx = context.WithoutCancel(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("liker_id", likerID.String()))

	target, err := phone.Normalize(targetPhone, s.defaultCountryCode)
	if err != nil {
		return nil, err
	}

	liker, found, err := s.profileRepo.FindByID(ctx, likerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find liker profile")
	}
	if !found {
		return nil, domainerrors.ErrProfileNotFound
	}

	callerPhone, ok := liker.PhoneNumber()
	if !ok {
		return nil, domainerrors.ErrPhoneRequired
	}
	if callerPhone == target {
		return nil, domainerrors.ErrSelfLike
	}

	exists, err := s.likeRepo.ExistsUnregistered(ctx, callerPhone, target)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check unregistered like")
	}

	if exists {
		return s.unlikeUnregistered(ctx, callerPhone, target)
	}

	err = s.likeRepo.CreateUnregistered(ctx, entity.NewUnregisteredLike(callerPhone, target, s.clock.Now()))
	if errors.Is(err, repository.ErrDuplicateUnregisteredLike) {
		logger.Info("Concurrent unregistered like detected, reconciling")

		return s.reconcileUnregistered(ctx, callerPhone, target, true)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create unregistered like")
	}

	result := &usecase.ToggleUnregisteredLikeResult{Liked: true}

	args := map[string]string{
		inviteArgInviterName:     liker.DisplayName(),
		inviteArgInviterUsername: liker.Username,
		inviteArgInviteURL:       s.smsConfig.InviteURL,
	}
	if err := s.smsNotifier.Send(ctx, target, s.smsConfig.InviteTemplate, args); err != nil {
		logger.Warn("Failed to send invite SMS",
			slog.Any("error", domainerrors.NewNotifierError(err, "send invite sms")),
		)
		result.NotifierFailed = true
	}

	return result, nil
}

func (s *likeService) unlikeUnregistered(ctx context.Context, callerPhone, target string) (*usecase.ToggleUnregisteredLikeResult, error) {
	deleted, err := s.likeRepo.DeleteUnregistered(ctx, callerPhone, target)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete unregistered like")
	}
	if !deleted {
		return s.reconcileUnregistered(ctx, callerPhone, target, false)
	}

	return &usecase.ToggleUnregisteredLikeResult{Liked: false}, nil
}

func (s *likeService) reconcileUnregistered(ctx context.Context, callerPhone, target string, wantLiked bool) (*usecase.ToggleUnregisteredLikeResult, error) {
	exists, err := s.likeRepo.ExistsUnregistered(ctx, callerPhone, target)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read unregistered like")
	}
	if exists != wantLiked {
		return nil, domainerrors.ErrConflict.WithDetails("unregistered like changed concurrently")
	}

	return &usecase.ToggleUnregisteredLikeResult{Liked: exists}, nil
}

func (s *likeService) RelationState(ctx context.Context, userID, otherID uuid.UUID) (*entity.Relation, error) {
	if userID == otherID {
		return nil, domainerrors.ErrSelfLike
	}

	liked, err := s.likeRepo.Exists(ctx, userID, otherID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check like")
	}

	likedBy, err := s.likeRepo.Exists(ctx, otherID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check reciprocal like")
	}

	match, found, err := s.matchRepo.FindByPair(ctx, userID, otherID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find match")
	}
	if !found {
		match = nil
	}

	return entity.DeriveRelation(userID, otherID, liked, likedBy, match), nil
}

func (s *likeService) ListMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Match, error) {
	limit, offset = normalizePage(limit, offset)

	matches, err := s.matchRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list matches")
	}

	return matches, nil
}
