package auth

import (
	"errors"
	"fmt"

	"github.com/chatterbox-im/chatterbox-server/internal/core"
)

var (
	// ErrInvalidCredentials is returned when username/password don't match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when signing up with a taken username.
	ErrUserExists = errors.New("user already exists")
)

// Service is the auth gate in front of the shared state: it issues tokens
// on login and signup and resolves verified user ids for reads.
type Service struct {
	store     *core.Store
	jwtConfig *JWTConfig
}

// NewService creates the auth gate over the given store.
func NewService(store *core.Store, jwtConfig *JWTConfig) *Service {
	return &Service{
		store:     store,
		jwtConfig: jwtConfig,
	}
}

// Login validates credentials and returns a signed token. It never mutates
// state.
func (s *Service) Login(username, password string) (string, error) {
	user, ok := s.store.FindUserByUsername(username)
	if !ok {
		return "", ErrInvalidCredentials
	}
	if err := ComparePassword(user.Password, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := GenerateToken(s.jwtConfig, user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}

// Signup creates a user with a hashed password and returns a signed token.
// Usernames are unique by policy: the check happens here, not in the store.
func (s *Service) Signup(username, password string) (string, error) {
	if _, exists := s.store.FindUserByUsername(username); exists {
		return "", ErrUserExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	user := s.store.AddUser(username, hash)

	token, err := GenerateToken(s.jwtConfig, user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}

// ResolveUser maps an already-verified user id back to its record. A false
// result means the token's user no longer exists and the read must be
// refused.
func (s *Service) ResolveUser(id int64) (core.User, bool) {
	return s.store.FindUserByID(id)
}

// ValidateToken validates a presented token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return ValidateToken(s.jwtConfig, tokenString)
}
