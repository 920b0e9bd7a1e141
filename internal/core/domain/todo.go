package domain

import "time"

// Todo is a task record owned by exactly one user.
// Owner is populated only by the joined store queries.
type Todo struct {
	ID         int64
	Title      string
	Contents   string
	Weather    string
	OwnerID    int64
	Owner      *User
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// HasOwner reports whether an owner was recorded at creation.
func (t *Todo) HasOwner() bool { return t.OwnerID != 0 }

// IsOwnedBy reports whether userID created the todo.
func (t *Todo) IsOwnedBy(userID int64) bool { return t.HasOwner() && t.OwnerID == userID }

// Manager grants a user commenting rights on a todo.
type Manager struct {
	ID     int64
	UserID int64
	TodoID int64
	User   *User
}

// BelongsTo reports whether the manager row was registered under todoID.
func (m *Manager) BelongsTo(todoID int64) bool { return m.TodoID == todoID }

// Comment is an immutable note left by a manager on a todo.
type Comment struct {
	ID         int64
	Contents   string
	UserID     int64
	TodoID     int64
	User       *User
	CreatedAt  time.Time
	ModifiedAt time.Time
}
