package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

type AdminService struct {
	users    ports.UserRepository
	comments ports.CommentRepository
	log      zerolog.Logger
}

func NewAdminService(users ports.UserRepository, comments ports.CommentRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, comments: comments, log: log}
}

func (s *AdminService) ChangeUserRole(ctx context.Context, userID int64, roleName string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	role, err := domain.ParseRole(roleName)
	if err != nil {
		return err
	}

	if err := s.users.UpdateRole(ctx, user.ID, role); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", user.ID).Str("from", string(user.Role)).Str("to", string(role)).Msg("user role changed")
	return nil
}

// DeleteComment removes a comment without checking that it exists.
func (s *AdminService) DeleteComment(ctx context.Context, commentID int64) error {
	if err := s.comments.DeleteByID(ctx, commentID); err != nil {
		return err
	}
	s.log.Info().Int64("comment_id", commentID).Msg("comment deleted")
	return nil
}
