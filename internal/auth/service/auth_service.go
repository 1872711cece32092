package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nexus-blend/showcase-api/internal/auth/domain"
	"github.com/nexus-blend/showcase-api/internal/auth/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the login and token gate for the admin dashboard.
type AuthService struct {
	users  *repository.UserRepository
	tokens *TokenIssuer
	cost   int
}

func NewAuthService(users *repository.UserRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
	}
}

// WithHashCost overrides the bcrypt cost used when creating users.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.cost = cost
	return s
}

// SeedAdmin creates the admin account with a bcrypt hash of password.
func (s *AuthService) SeedAdmin(username, password string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("seed admin: username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("seed admin: hash password: %w", err)
	}
	return s.users.Create(username, string(hash))
}

// Login verifies the credentials and issues an access token. Unknown users
// and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	user, err := s.users.GetByUsername(username)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	token, exp, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		Token:     token,
		ExpiresAt: exp,
		User:      domain.Identity{UserID: user.ID, Username: user.Username},
	}, nil
}

// Authenticate validates a bearer token.
func (s *AuthService) Authenticate(token string) (domain.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Identity{}, domain.ErrMissingToken
	}
	return s.tokens.Verify(token)
}
