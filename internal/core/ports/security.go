package ports

import "github.com/plannr/todo-api/internal/core/domain"

// PasswordHasher hashes and verifies secrets.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(password, hash string) bool
}

// TokenService issues and parses bearer credentials.
type TokenService interface {
	// Issue returns a credential prefixed with "Bearer ".
	Issue(user *domain.User) (string, error)
	// Parse verifies a raw token (without prefix) and decodes its identity.
	Parse(token string) (domain.Identity, error)
}
