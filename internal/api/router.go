package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/plannr/todo-api/docs"
	"github.com/plannr/todo-api/internal/api/handler"
	"github.com/plannr/todo-api/internal/api/middleware"
	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

// Deps carries everything the HTTP layer needs. Infrastructure is wired by the
// caller so the router only depends on ports.
type Deps struct {
	Auth     ports.AuthService
	Todos    ports.TodoService
	Managers ports.ManagerService
	Comments ports.CommentService
	Users    ports.UserService
	Admin    ports.AdminService

	Tokens    ports.TokenService
	AccessLog ports.AccessLogSink
	Health    map[string]handler.Pinger

	// Registerer receives the HTTP metrics. Defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	reg := d.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "todo_api",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	auth := middleware.Auth(d.Tokens)

	authHandler := handler.NewAuthHandler(d.Auth)
	todoHandler := handler.NewTodoHandler(d.Todos)
	managerHandler := handler.NewManagerHandler(d.Managers)
	commentHandler := handler.NewCommentHandler(d.Comments)
	userHandler := handler.NewUserHandler(d.Users)
	adminHandler := handler.NewAdminHandler(d.Admin)
	healthHandler := handler.NewHealthHandler(d.Health)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)

	// --- Todos ---
	e.POST("/todos", todoHandler.Create, auth)
	e.GET("/todos", todoHandler.List)
	e.GET("/todos/:todoId", todoHandler.Get)

	e.POST("/todos/:todoId/managers", managerHandler.Assign, auth)
	e.GET("/todos/:todoId/managers", managerHandler.List)
	e.DELETE("/todos/:todoId/managers/:managerId", managerHandler.Remove, auth)

	e.POST("/todos/:todoId/comments", commentHandler.Add, auth)
	e.GET("/todos/:todoId/comments", commentHandler.List)

	// --- Users ---
	e.GET("/users/:userId", userHandler.Get)
	e.PUT("/users", userHandler.ChangePassword, auth)

	// --- Admin ---
	// AccessLog runs ahead of RBAC so forbidden attempts are audited as well.
	admin := e.Group("/admin", auth, middleware.AccessLog(d.AccessLog, d.Log), middleware.RBAC(domain.RoleAdmin))
	admin.PATCH("/users/:userId", adminHandler.ChangeUserRole)
	admin.DELETE("/comments/:commentId", adminHandler.DeleteComment)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= 500:
				ev = log.Error().Err(v.Error)
			case v.Error != nil:
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
