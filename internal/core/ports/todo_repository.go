package ports

import (
	"context"

	"github.com/plannr/todo-api/internal/core/domain"
)

// TodoPageQuery selects a page of todos. Page is 1-based.
type TodoPageQuery struct {
	Page int
	Size int
}

// TodoRepository defines persistence operations for todos.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	// FindByID returns the todo without its owner joined.
	FindByID(ctx context.Context, id int64) (*domain.Todo, error)
	// FindByIDWithOwner returns the todo with Owner populated.
	FindByIDWithOwner(ctx context.Context, id int64) (*domain.Todo, error)
	// List returns a page ordered by modified_at descending, with owners
	// joined, and the total number of todos.
	List(ctx context.Context, q TodoPageQuery) ([]*domain.Todo, int64, error)
}
