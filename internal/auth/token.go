// Package auth mints the short-lived JWTs the recording API expects.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer signs time-boxed bearer tokens from a long-lived API key pair.
// It is stateless; tokens are minted fresh for every request rather than
// cached, so expiry only has to cover one round trip.
type Issuer struct {
	key    string
	secret string
	ttl    time.Duration
}

// NewIssuer returns an Issuer for the given key pair and token lifetime.
func NewIssuer(key, secret string, ttl time.Duration) *Issuer {
	return &Issuer{key: key, secret: secret, ttl: ttl}
}

// Issue signs a claim set of {iss: key, exp: now+ttl} with HS256.
// A signing failure means a misconfigured secret and is not retryable.
func (i *Issuer) Issue(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    i.key,
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(i.secret))
	if err != nil {
		return "", fmt.Errorf("sign auth token: %w", err)
	}
	return signed, nil
}
