package queue

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/plannr/todo-api/internal/api/metrics"
	"github.com/plannr/todo-api/internal/core/domain"
	"github.com/plannr/todo-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher persists access log entries on a fixed set of workers. Entries
// are sharded by user id so each user's entries are written in order.
type Dispatcher struct {
	workers []chan domain.AccessLog
	repo    ports.AccessLogRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AccessLogRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AccessLog, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AccessLog, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an entry to the worker responsible for its user. When that
// worker's buffer is full the entry is dropped so requests never block on
// auditing.
func (d *Dispatcher) Enqueue(entry domain.AccessLog) {
	idx := d.shardIndex(entry.UserID)
	select {
	case d.workers[idx] <- entry:
		metrics.AccessLogQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AccessLogErrorsTotal.Inc()
		d.log.Warn().Int64("user_id", entry.UserID).Str("url", entry.URL).Msg("access log queue full, entry dropped")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID int64) int {
	if userID < 0 {
		userID = -userID
	}
	return int(userID % int64(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AccessLog) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.AccessLogQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, &entry); err != nil {
				metrics.AccessLogErrorsTotal.Inc()
				d.log.Error().Err(err).
					Int64("user_id", entry.UserID).
					Int("worker_id", id).
					Msg("access log persistence failed")
			}
		}
	}
}
