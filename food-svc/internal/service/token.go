package service

import (
	"time"

	"foodapp/food-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of every issued bearer token.
const TokenTTL = 7 * 24 * time.Hour

type Claims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 bearer tokens with a secret
// supplied at startup.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{
		secret: secret,
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := t.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, unauthorizedError("Invalid token")
	}
	return claims, nil
}
