package handler

import (
	"log/slog"
	"net/http"

	"mutuals/internal/delivery/api/middleware"
	"mutuals/internal/delivery/api/response"
	"mutuals/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC  usecase.ProfileUsecase
	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// ProfileHandler serves the caller's profile, its QR code and the session
type ProfileHandler struct {
	profileUC  usecase.ProfileUsecase
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:  params.ProfileUC,
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// ResolveQRRequest represents the request body for resolving a scanned profile QR code
type ResolveQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// GetProfile returns the caller's own profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GenerateProfileQR returns the caller's share code as a PNG
func (h *ProfileHandler) GenerateProfileQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	qrCode, err := h.profileUC.GenerateProfileQR(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=profile-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// ResolveProfileQR returns the profile a scanned share code points to
func (h *ProfileHandler) ResolveProfileQR(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ResolveQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid QR code input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.profileUC.ResolveProfileQR(c.Request().Context(), req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileSummary(profile))
}

// EndSession drops the cached identity lookup so the next request re-reads the profile
func (h *ProfileHandler) EndSession(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	h.identityUC.Invalidate(session.ExternalID)

	return c.NoContent(http.StatusNoContent)
}
