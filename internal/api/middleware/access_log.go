package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

// AccessLog records who called an endpoint and when. A missing identity is
// logged with an empty user and never fails the request.
func AccessLog(sink ports.AccessLogSink, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			entry := domain.AccessLog{
				Method:      c.Request().Method,
				URL:         c.Request().URL.RequestURI(),
				RequestedAt: time.Now().UTC(),
			}

			ev := log.Info().
				Str("method", entry.Method).
				Str("url", entry.URL).
				Time("requested_at", entry.RequestedAt)
			if identity, ok := IdentityFrom(c); ok {
				entry.UserID = identity.UserID
				ev = ev.Int64("user_id", identity.UserID)
			} else {
				ev = ev.Str("user_id", "")
			}
			ev.Msg("admin api access")

			if sink != nil {
				sink.Enqueue(entry)
			}
			return next(c)
		}
	}
}
