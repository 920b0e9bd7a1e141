package domain

import (
	"strings"
	"time"
)

// Role gates access to admin-only operations.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole resolves a role name case-insensitively.
func ParseRole(name string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(name))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrInvalidRole
}

// User models a registered account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

// Identity is the decoded content of a verified bearer credential.
type Identity struct {
	UserID int64
	Email  string
	Role   Role
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
