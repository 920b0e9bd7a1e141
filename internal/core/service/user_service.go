package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

type UserService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, log: log}
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*ports.UserView, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := ports.NewUserView(user)
	return &view, nil
}

// ChangePassword replaces the stored hash after verifying oldPassword. The new
// password must differ from the old one in plaintext.
func (s *UserService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if newPassword == oldPassword {
		return domain.ErrSamePassword
	}
	if !s.hasher.Matches(oldPassword, user.PasswordHash) {
		return domain.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("password changed")
	return nil
}
