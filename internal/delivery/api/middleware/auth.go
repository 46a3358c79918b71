package middleware

import (
	"log/slog"
	"strings"

	"mutuals/internal/delivery/api/response"
	deliverycontext "mutuals/internal/delivery/context"
	domainerrors "mutuals/internal/domain/errors"
	"mutuals/internal/domain/service"
	"mutuals/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier   service.SessionVerifier
	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthMiddleware turns an identity provider token into a Session.
type AuthMiddleware struct {
	verifier   service.SessionVerifier
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:   params.Verifier,
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// Authenticate verifies the bearer token and opens a session for its profile.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Authorization header must carry a Bearer token")
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		externalID, err := m.verifier.Verify(ctx, token)
		if err != nil {
			logger.Debug("Session token rejected", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrSessionInvalid)
		}

		session, err := m.identityUC.OpenSession(ctx, externalID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetSession(c, session)

		reqLogger := logger.With(slog.String("user_id", session.UserID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// GetUserID returns the authenticated profile id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return uuid.Nil, false
	}

	return session.UserID, true
}

// GetSession returns the authenticated session.
func GetSession(c echo.Context) (*usecase.Session, bool) {
	return deliverycontext.GetSession(c)
}
