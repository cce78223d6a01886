package service

import (
	"errors"
	"testing"
	"time"

	"foodapp/food-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = &domain.User{ID: 42, Name: "Asha", Email: "asha@example.com"}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"))

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "Asha", claims.Name)
	assert.WithinDuration(t, claims.IssuedAt.Add(TokenTTL), claims.ExpiresAt.Time, time.Second)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	secret := []byte("test-secret")
	issuer := NewTokenIssuer(secret)

	expired := NewTokenIssuer(secret)
	expired.now = func() time.Time { return time.Now().Add(-TokenTTL - time.Hour) }
	expiredToken, err := expired.Issue(testUser)
	require.NoError(t, err)

	foreignToken, err := NewTokenIssuer([]byte("another-secret")).Issue(testUser)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 42}).SignedString(secret)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:           42,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expiredToken},
		{name: "signed with another secret", token: foreignToken},
		{name: "missing expiry", token: noExpiry},
		{name: "alg none", token: unsigned},
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			claims, err := issuer.Verify(testCase.token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, ErrUnauthorized))
			assert.EqualError(t, err, "Invalid token")
		})
	}
}
