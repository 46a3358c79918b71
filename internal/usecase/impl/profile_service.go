package impl

import (
	"context"
	"log/slog"

	"mutuals/internal/domain/entity"
	domainerrors "mutuals/internal/domain/errors"
	"mutuals/internal/domain/repository"
	"mutuals/internal/domain/service"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo   repository.ProfileRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo   repository.ProfileRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:   params.ProfileRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, found, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}
	if !found {
		return nil, domainerrors.ErrProfileNotFound
	}

	return profile, nil
}

// GenerateProfileQR renders a share code for the user's own profile.
func (srv *profileService) GenerateProfileQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateProfileQR(profile.ID, profile.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return png, nil
}

// ResolveProfileQR turns scanned QR data back into the profile it names.
func (srv *profileService) ResolveProfileQR(ctx context.Context, qrData string) (*entity.Profile, error) {
	profileID, err := srv.qrcodeService.ParseProfileQR(qrData)
	if err != nil {
		srv.logger.Debug("Rejected profile QR code", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return srv.GetProfile(ctx, profileID)
}
