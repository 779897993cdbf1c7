package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/metrics"
	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/rabbitmq/queue"
)

const defaultBatch = 100

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/dispatcher.go -package=mocks
type dueSource interface {
	Due(ctx context.Context, now time.Time, limit int) ([]model.NotificationRequest, error)
}

type publisher interface {
	Publish(msg queue.NotificationMessage, strategy retry.Strategy) error
}

// Dispatcher moves due notifications from the notification center onto the queue.
type Dispatcher struct {
	source    dueSource
	publisher publisher
	metrics   *metrics.Dispatch
	interval  time.Duration
	batch     int
	now       func() time.Time
}

func NewDispatcher(src dueSource, pub publisher, m *metrics.Dispatch, interval time.Duration, batch int) *Dispatcher {
	if batch <= 0 {
		batch = defaultBatch
	}

	return &Dispatcher{
		source:    src,
		publisher: pub,
		metrics:   m,
		interval:  interval,
		batch:     batch,
		now:       time.Now,
	}
}

// Run polls every interval until ctx is done.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", d.interval).Msg("dispatcher started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("dispatcher stopped")
			return
		case <-ticker.C:
			d.dispatch(ctx, strategy)
		}
	}
}

// dispatch drains every due request, batch by batch. It returns how many were
// published.
func (d *Dispatcher) dispatch(ctx context.Context, strategy retry.Strategy) int {
	published := 0

	for {
		due, err := d.source.Due(ctx, d.now(), d.batch)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to fetch due notifications")
			return published
		}

		for _, req := range due {
			msg := queue.MessageFromRequest(req)

			if err := d.publisher.Publish(msg, strategy); err != nil {
				d.metrics.IncPublished(false)
				zlog.Logger.Error().Err(err).Str("identifier", req.Identifier).Msg("failed to publish due notification")
				continue
			}

			d.metrics.IncPublished(true)
			published++
		}

		if len(due) < d.batch || ctx.Err() != nil {
			return published
		}
	}
}
