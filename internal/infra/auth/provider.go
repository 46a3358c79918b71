package auth

import (
	"context"
	"log/slog"

	"mutuals/config"
	"mutuals/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the SessionVerifier, injected by Fx.
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionVerifier selects the verifier named by auth.provider.
func NewSessionVerifier(params VerifierParams) (service.SessionVerifier, error) {
	switch provider := params.Config.Auth.Provider; provider {
	case config.AuthProviderFirebase:
		params.Logger.Info("Verifying sessions with Firebase")

		return NewFirebaseVerifier(params.Ctx, params.Config.Firebase)
	case config.AuthProviderJWT, "":
		params.Logger.Info("Verifying sessions with HS256 tokens")

		return NewJWTVerifier(params.Config.SecretKey.Access)
	default:
		return nil, errors.Errorf("unknown auth provider: %s", provider)
	}
}
