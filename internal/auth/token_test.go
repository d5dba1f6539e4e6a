package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_ClaimsRoundTrip(t *testing.T) {
	t.Parallel()
	now := time.Date(2023, 3, 5, 14, 30, 0, 0, time.UTC)
	iss := NewIssuer("key-123", "secret-456", 4*time.Second)

	signed, err := iss.Issue(now)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(signed, &claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-456"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	require.True(t, tok.Valid)

	assert.Equal(t, "key-123", claims.Issuer)
	assert.Equal(t, now.Add(4*time.Second).Unix(), claims.ExpiresAt.Unix())
}

func TestIssue_WrongSecretFailsValidation(t *testing.T) {
	t.Parallel()
	now := time.Now()
	iss := NewIssuer("key-123", "secret-456", 4*time.Second)

	signed, err := iss.Issue(now)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("not-the-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	assert.Error(t, err)
}
