package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plannr/todo-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Get returns the public projection of a user.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User id"
// @Success      200     {object}  ports.UserView
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword replaces the caller's password after verifying the old one.
//
// @Summary      Change password
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Old and new password"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return err
	}
	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.ChangePassword(c.Request().Context(), identity.UserID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
