package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=resync.go -destination=../mocks/worker/resync.go -package=mocks
type resyncer interface {
	Resync(ctx context.Context) (int, error)
}

// Resync periodically rebuilds every expiration notification, so that urgent
// alerts are re-armed and reminders follow the calendar.
type Resync struct {
	service  resyncer
	interval time.Duration
}

func NewResync(s resyncer, interval time.Duration) *Resync {
	return &Resync{service: s, interval: interval}
}

// Run blocks until ctx is done. A non-positive interval disables it.
func (r *Resync) Run(ctx context.Context) {
	if r.interval <= 0 {
		zlog.Logger.Info().Msg("periodic resync disabled")
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := r.service.Resync(ctx)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("periodic resync failed")
				continue
			}

			zlog.Logger.Info().Int("products", n).Msg("notifications resynced")
		}
	}
}
