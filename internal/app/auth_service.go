// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"

	"blog/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username lookup misses, so a login
// attempt costs roughly one bcrypt verification whether or not the account
// exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService handles registration and credential verification.
type AuthService struct {
	users domain.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register validates and stores a new user. The password is hashed before it
// reaches the repository; the plaintext is never persisted or logged.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, &domain.ValidationError{Msg: "Username is required."}
	}
	if password == "" {
		return nil, &domain.ValidationError{Msg: "Password is required."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, username, string(hash))
}

// Login verifies the submitted credentials and returns the matching user.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// UserByID resolves an identity token to its user record.
func (s *AuthService) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// LoginWithProvider returns the user for an identity already verified by an
// external provider (e.g. OIDC), auto-provisioning a row on first login. A
// provisioned user has an empty password hash, so the form login can never
// match it.
func (s *AuthService) LoginWithProvider(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, errors.New("provider returned no username")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = s.users.Create(ctx, username, "")
	if errors.Is(err, domain.ErrUsernameTaken) {
		// Lost a provisioning race; the row exists now.
		return s.users.GetByUsername(ctx, username)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
