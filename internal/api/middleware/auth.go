package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

// IdentityKey is the echo context key holding the caller's domain.Identity.
const IdentityKey = "identity"

// Auth validates the bearer token and injects the caller identity into context.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Auth, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(IdentityKey).(domain.Identity)
	return identity, ok
}
