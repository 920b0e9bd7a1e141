package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/api/metrics"
	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

// AuthService implements signup and signin.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

func (s *AuthService) Signup(ctx context.Context, email, password, roleName string) (string, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("signup: %w", err)
	}
	if exists {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
		return "", domain.ErrEmailExists
	}

	role, err := domain.ParseRole(roleName)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("signup: hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		ModifiedAt:   now,
	})
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("signup: issue token: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "ok").Inc()
	s.log.Info().Int64("user_id", user.ID).Str("role", string(role)).Msg("user signed up")
	return token, nil
}

func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthAttemptsTotal.WithLabelValues("signin", "rejected").Inc()
			return "", domain.ErrUserNotRegistered
		}
		return "", fmt.Errorf("signin: %w", err)
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		metrics.AuthAttemptsTotal.WithLabelValues("signin", "rejected").Inc()
		return "", domain.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("signin: issue token: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signin", "ok").Inc()
	return token, nil
}
