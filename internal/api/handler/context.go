package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/plannr/todo-api/internal/api/middleware"
	"github.com/plannr/todo-api/internal/core/domain"
)

// callerIdentity extracts the identity injected by the Auth middleware. Its
// absence means the route was wired without Auth, so the request is rejected.
func callerIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || identity.UserID == 0 {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidRequest("invalid " + name)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.InvalidRequest("invalid " + name)
	}
	return v, nil
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
