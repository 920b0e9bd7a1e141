package ports

import (
	"time"

	"github.com/plannr/todo-api/internal/core/domain"
)

// UserView is the public projection of a user. It never carries the hash.
type UserView struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// TodoView is the projection returned for a single todo.
type TodoView struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Contents   string    `json:"contents"`
	Weather    string    `json:"weather"`
	User       UserView  `json:"user"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// TodoPage is returned by ListTodos.
type TodoPage struct {
	Items      []TodoView `json:"content"`
	Total      int64      `json:"totalElements"`
	Page       int        `json:"page"`
	Size       int        `json:"size"`
	TotalPages int        `json:"totalPages"`
}

type ManagerView struct {
	ID   int64    `json:"id"`
	User UserView `json:"user"`
}

type CommentView struct {
	ID       int64    `json:"id"`
	Contents string   `json:"contents"`
	User     UserView `json:"user"`
}

// NewUserView projects u; a nil user yields the zero view.
func NewUserView(u *domain.User) UserView {
	if u == nil {
		return UserView{}
	}
	return UserView{ID: u.ID, Email: u.Email}
}

func NewTodoView(t *domain.Todo) TodoView {
	return TodoView{
		ID:         t.ID,
		Title:      t.Title,
		Contents:   t.Contents,
		Weather:    t.Weather,
		User:       NewUserView(t.Owner),
		CreatedAt:  t.CreatedAt,
		ModifiedAt: t.ModifiedAt,
	}
}

func NewManagerView(m *domain.Manager) ManagerView {
	return ManagerView{ID: m.ID, User: NewUserView(m.User)}
}

func NewCommentView(c *domain.Comment) CommentView {
	return CommentView{ID: c.ID, Contents: c.Contents, User: NewUserView(c.User)}
}
