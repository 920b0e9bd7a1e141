package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/api/metrics"
	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

type CommentService struct {
	todos    ports.TodoRepository
	managers ports.ManagerRepository
	comments ports.CommentRepository
	log      zerolog.Logger
}

func NewCommentService(todos ports.TodoRepository, managers ports.ManagerRepository, comments ports.CommentRepository, log zerolog.Logger) *CommentService {
	return &CommentService{todos: todos, managers: managers, comments: comments, log: log}
}

// AddComment stores a comment by identity. Only registered managers of the
// todo may comment.
func (s *CommentService) AddComment(ctx context.Context, identity domain.Identity, todoID int64, contents string) (*ports.CommentView, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	isManager, err := s.managers.ExistsByTodoIDAndUserID(ctx, todo.ID, identity.UserID)
	if err != nil {
		return nil, err
	}
	if !isManager {
		return nil, domain.ErrNotTodoManager
	}

	now := time.Now().UTC()
	saved, err := s.comments.Create(ctx, &domain.Comment{
		Contents:   contents,
		UserID:     identity.UserID,
		TodoID:     todo.ID,
		CreatedAt:  now,
		ModifiedAt: now,
	})
	if err != nil {
		return nil, err
	}
	saved.User = &domain.User{ID: identity.UserID, Email: identity.Email, Role: identity.Role}

	metrics.CommentsCreatedTotal.Inc()
	s.log.Debug().Int64("todo_id", todo.ID).Int64("comment_id", saved.ID).Msg("comment added")

	view := ports.NewCommentView(saved)
	return &view, nil
}

func (s *CommentService) ListComments(ctx context.Context, todoID int64) ([]ports.CommentView, error) {
	comments, err := s.comments.FindByTodoIDWithUser(ctx, todoID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, ports.NewCommentView(c))
	}
	return views, nil
}
