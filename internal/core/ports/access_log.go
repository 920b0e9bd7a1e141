package ports

import (
	"context"

	"github.com/plannr/todo-api/internal/core/domain"
)

// AccessLogRepository persists audit entries for privileged requests.
type AccessLogRepository interface {
	Insert(ctx context.Context, entry *domain.AccessLog) error
}

// AccessLogSink accepts entries for asynchronous persistence.
type AccessLogSink interface {
	Enqueue(entry domain.AccessLog)
}
