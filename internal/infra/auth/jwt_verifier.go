// Package auth verifies identity provider session tokens.
package auth

import (
	"context"
	"time"

	"mutuals/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtVerifier accepts HS256 tokens whose subject is the provider user id.
// It stands in for the identity provider in local and test environments.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier creates a verifier for tokens signed with secret.
func NewJWTVerifier(secret string) (service.SessionVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

func (v *jwtVerifier) Verify(_ context.Context, token string) (string, error) {
	parsed, err := v.parser.Parse(token, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "invalid session token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("session token has no subject")
	}

	return subject, nil
}

// SignSessionToken issues a token the JWT verifier accepts. It backs local tooling and tests.
func SignSessionToken(secret, externalID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   externalID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}
