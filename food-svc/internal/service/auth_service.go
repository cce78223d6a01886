package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"foodapp/food-svc/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = bcrypt.DefaultCost

// dummyHash is compared against when the email is unknown, so a missing
// account costs the same bcrypt round as a wrong password.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), passwordCost)
	return hash
})

type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthService struct {
	users  UserRepository
	tokens *TokenIssuer
}

func NewAuthService(users UserRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, in SignupInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(in, "Missing fields"); err != nil {
		return nil, err
	}

	existing, err := s.users.UserByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, conflictError("Email already registered")
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, validationError("Password too long")
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, conflictError("Email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate never reveals whether the email exists.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("failed to look up user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return "", unauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", unauthorizedError("Invalid credentials")
	}

	return s.tokens.Issue(user)
}

func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	return s.tokens.Issue(user)
}

func (s *AuthService) VerifyToken(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}
