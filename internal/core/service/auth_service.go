package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/ports"
)

// AuthService implements registration and login against the user directory.
// Passwords are demo credentials compared verbatim; the token is a signed
// HS256 JWT carrying the username and role.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if username == "" || password == "" || !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	// The directory's Add is a silent no-op on duplicates; the exists check
	// here is what turns that into a reportable conflict.
	if s.repo.UsernameExists(ctx, username) {
		return nil, domain.ErrUserExists
	}

	user := &domain.User{
		Username:  username,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.repo.Add(ctx, user)

	s.log.Info().Str("username", username).Str("role", string(role)).Msg("user registered")

	clone := *user
	return &clone, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
