package impl

import (
	"context"
	"testing"

	"mutuals/internal/domain/entity"
	domainerrors "mutuals/internal/domain/errors"
	mockRepo "mutuals/internal/mocks/repository"
	mockService "mutuals/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileServiceForTest(t *testing.T) (*profileService, *mockRepo.MockProfileRepository, *mockService.MockQRCodeService) {
	t.Helper()

	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrService := mockService.NewMockQRCodeService(t)
	svc := NewProfileService(ProfileServiceParams{
		ProfileRepo:   profileRepo,
		QRCodeService: qrService,
		Logger:        newDiscardLogger(),
	})

	return svc.(*profileService), profileRepo, qrService
}

func TestProfileService_GetProfile(t *testing.T) {
	svc, profileRepo, _ := newProfileServiceForTest(t)
	profile := &entity.Profile{ID: uuid.New(), Username: "alice"}
	missing := uuid.New()

	profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, true, nil)
	profileRepo.EXPECT().FindByID(mock.Anything, missing).Return(nil, false, nil)

	got, err := svc.GetProfile(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	_, err = svc.GetProfile(context.Background(), missing)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_GenerateProfileQR(t *testing.T) {
	svc, profileRepo, qrService := newProfileServiceForTest(t)
	profile := &entity.Profile{ID: uuid.New(), Username: "alice"}

	profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, true, nil)
	qrService.EXPECT().GenerateProfileQR(profile.ID, "alice").Return([]byte("png"), nil)

	png, err := svc.GenerateProfileQR(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestProfileService_ResolveProfileQR(t *testing.T) {
	svc, profileRepo, qrService := newProfileServiceForTest(t)
	profile := &entity.Profile{ID: uuid.New(), Username: "bob"}

	qrService.EXPECT().ParseProfileQR("good").Return(profile.ID, nil)
	qrService.EXPECT().ParseProfileQR("bad").Return(uuid.Nil, errors.New("unexpected type"))
	profileRepo.EXPECT().FindByID(mock.Anything, profile.ID).Return(profile, true, nil)

	got, err := svc.ResolveProfileQR(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)

	_, err = svc.ResolveProfileQR(context.Background(), "bad")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}
