package domain

import "errors"

// Error kinds. Every domain error wraps exactly one of these so the transport
// layer can map it to a status code with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("access forbidden")
)

// Error is a user-facing failure carrying a kind and a message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }
func InvalidRequest(msg string) error { return &Error{Kind: ErrInvalidRequest, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Msg: msg} }

var (
	ErrUserNotFound       = NotFound("user not found")
	ErrUserNotRegistered  = NotFound("user is not registered")
	ErrTodoNotFound       = NotFound("todo not found")
	ErrManagerNotFound    = NotFound("manager not found")
	ErrManagerUserMissing = NotFound("manager user to register does not exist")

	ErrEmailExists         = InvalidRequest("email already exists")
	ErrInvalidRole         = InvalidRequest("invalid user role")
	ErrTodoOwnerMissing    = InvalidRequest("todo owner is not valid for manager registration")
	ErrNotTodoOwner        = InvalidRequest("only the todo owner can manage its managers")
	ErrSelfAssignment      = InvalidRequest("todo owner cannot register themselves as manager")
	ErrManagerTodoMismatch = InvalidRequest("manager is not registered to this todo")
	ErrNotTodoManager      = InvalidRequest("only todo managers can leave a comment")
	ErrSamePassword        = InvalidRequest("new password cannot be the same as the current password")

	ErrWrongPassword = Unauthorized("wrong password")
)
