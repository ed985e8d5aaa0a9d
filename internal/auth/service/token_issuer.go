package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/itsSauraj/recipe-api/internal/common/clock"
	"github.com/itsSauraj/recipe-api/internal/common/jwtverify"
	"github.com/itsSauraj/recipe-api/internal/observability/metrics"
)

// TokenIssuer mints the stateless access tokens used as bearer credentials.
// The subject claim is the user's email; validity is bounded only by the
// embedded expiry, there is no server-side revocation.
type TokenIssuer struct {
	jwtSecret      []byte
	clock          clock.Clock
	accessTokenTTL time.Duration
}

func NewTokenIssuer(jwtSecret string, accessTokenTTL time.Duration, clk clock.Clock) *TokenIssuer {
	return &TokenIssuer{
		jwtSecret:      []byte(jwtSecret),
		clock:          clk,
		accessTokenTTL: accessTokenTTL,
	}
}

func (ti *TokenIssuer) Issue(email string) (string, error) {
	now := ti.clock.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(ti.accessTokenTTL).Unix(),
		"iat": now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(ti.jwtSecret)
	if err != nil {
		return "", err
	}

	metrics.AccessTokensIssued.Inc()
	return tokenString, nil
}

func (ti *TokenIssuer) Parse(tokenString string) (jwtverify.Claims, error) {
	return jwtverify.ParseToken(tokenString, ti.jwtSecret)
}
