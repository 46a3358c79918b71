package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mutuals/config"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func TestJWTVerifier_RoundTrip(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token, err := SignSessionToken(testSecret, "firebase-uid-1", time.Hour)
	require.NoError(t, err)

	externalID, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", externalID)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret)
	require.NoError(t, err)

	expired, err := SignSessionToken(testSecret, "uid", -time.Minute)
	require.NoError(t, err)

	wrongSecret, err := SignSessionToken("another_secret", "uid", time.Hour)
	require.NoError(t, err)

	noSubject, err := SignSessionToken(testSecret, "", time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "uid"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "uid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": wrongSecret,
		"no subject":   noSubject,
		"no expiry":    noExpiry,
		"wrong alg":    wrongAlg,
		"garbage":      "not.a.token",
		"empty":        "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(context.Background(), token)
			assert.Error(t, err)
		})
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier("")
	assert.Error(t, err)
}

type stubIDTokenVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (s *stubIDTokenVerifier) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	verifier := &firebaseVerifier{client: &stubIDTokenVerifier{token: &firebaseauth.Token{UID: "uid-7"}}}

	externalID, err := verifier.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-7", externalID)

	verifier = &firebaseVerifier{client: &stubIDTokenVerifier{err: errors.New("ID token has expired")}}

	_, err = verifier.Verify(context.Background(), "id-token")
	assert.ErrorContains(t, err, "expired")
}

func TestNewSessionVerifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Auth: &config.AuthConfig{Provider: config.AuthProviderJWT}}
	cfg.SecretKey.Access = testSecret

	verifier, err := NewSessionVerifier(VerifierParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &jwtVerifier{}, verifier)

	cfg.Auth.Provider = "saml"
	_, err = NewSessionVerifier(VerifierParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	assert.Error(t, err)
}
