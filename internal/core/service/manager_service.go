package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/api/metrics"
	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

// ManagerService enforces the ownership rules around todo managers.
type ManagerService struct {
	users    ports.UserRepository
	todos    ports.TodoRepository
	managers ports.ManagerRepository
	log      zerolog.Logger
}

func NewManagerService(users ports.UserRepository, todos ports.TodoRepository, managers ports.ManagerRepository, log zerolog.Logger) *ManagerService {
	return &ManagerService{users: users, todos: todos, managers: managers, log: log}
}

// AssignManager registers managerUserID as a manager of todoID. Only the todo
// owner may do this, and the owner can never be their own manager.
func (s *ManagerService) AssignManager(ctx context.Context, identity domain.Identity, todoID, managerUserID int64) (*ports.ManagerView, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if !todo.HasOwner() {
		return nil, domain.ErrTodoOwnerMissing
	}
	if !todo.IsOwnedBy(identity.UserID) {
		return nil, domain.ErrNotTodoOwner
	}

	managerUser, err := s.users.FindByID(ctx, managerUserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrManagerUserMissing
		}
		return nil, err
	}
	if managerUser.ID == todo.OwnerID {
		return nil, domain.ErrSelfAssignment
	}

	saved, err := s.managers.Create(ctx, &domain.Manager{UserID: managerUser.ID, TodoID: todo.ID})
	if err != nil {
		return nil, err
	}
	saved.User = managerUser

	metrics.ManagersAssignedTotal.Inc()
	s.log.Info().Int64("todo_id", todo.ID).Int64("manager_user_id", managerUser.ID).Msg("manager assigned")

	view := ports.NewManagerView(saved)
	return &view, nil
}

func (s *ManagerService) ListManagers(ctx context.Context, todoID int64) ([]ports.ManagerView, error) {
	if _, err := s.todos.FindByID(ctx, todoID); err != nil {
		return nil, err
	}

	managers, err := s.managers.FindByTodoIDWithUser(ctx, todoID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ManagerView, 0, len(managers))
	for _, m := range managers {
		views = append(views, ports.NewManagerView(m))
	}
	return views, nil
}

// RemoveManager deletes managerID from todoID on behalf of callerID, who must
// own the todo. The manager row must have been registered under todoID.
func (s *ManagerService) RemoveManager(ctx context.Context, callerID, todoID, managerID int64) error {
	if _, err := s.users.FindByID(ctx, callerID); err != nil {
		return err
	}

	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return err
	}
	if !todo.IsOwnedBy(callerID) {
		return domain.ErrNotTodoOwner
	}

	manager, err := s.managers.FindByID(ctx, managerID)
	if err != nil {
		return err
	}
	if !manager.BelongsTo(todo.ID) {
		return domain.ErrManagerTodoMismatch
	}

	if err := s.managers.Delete(ctx, manager.ID); err != nil {
		return err
	}

	s.log.Info().Int64("todo_id", todo.ID).Int64("manager_id", manager.ID).Msg("manager removed")
	return nil
}
