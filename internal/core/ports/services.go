package ports

import (
	"context"

	"github.com/plannr/todo-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, roleName string) (string, error)
	Signin(ctx context.Context, email, password string) (string, error)
}

type TodoService interface {
	CreateTodo(ctx context.Context, identity domain.Identity, title, contents string) (*TodoView, error)
	GetTodo(ctx context.Context, id int64) (*TodoView, error)
	ListTodos(ctx context.Context, page, size int) (*TodoPage, error)
}

type ManagerService interface {
	AssignManager(ctx context.Context, identity domain.Identity, todoID, managerUserID int64) (*ManagerView, error)
	ListManagers(ctx context.Context, todoID int64) ([]ManagerView, error)
	RemoveManager(ctx context.Context, callerID, todoID, managerID int64) error
}

type CommentService interface {
	AddComment(ctx context.Context, identity domain.Identity, todoID int64, contents string) (*CommentView, error)
	ListComments(ctx context.Context, todoID int64) ([]CommentView, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*UserView, error)
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
}

// AdminService groups the operations reserved for the ADMIN role.
type AdminService interface {
	ChangeUserRole(ctx context.Context, userID int64, roleName string) error
	DeleteComment(ctx context.Context, commentID int64) error
}
