package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/notifier.go -package=mocks
type notifQueue interface {
	Consume(ctx context.Context, out chan<- queue.NotificationMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.NotificationMessage, strategy retry.Strategy)
	Skip(ctx context.Context, msg queue.NotificationMessage, reason string)
}

type preferences interface {
	NotificationsEnabled(ctx context.Context) (bool, error)
}

type permissions interface {
	Permission(ctx context.Context) (model.PermissionStatus, error)
}

// Notifier consumes due notifications and hands them to the message handler
// unless the user turned notifications off or denied permission.
type Notifier struct {
	queue   notifQueue
	handler messageHandler
	prefs   preferences
	perms   permissions
}

func NewNotifier(q notifQueue, h messageHandler, prefs preferences, perms permissions) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
		prefs:   prefs,
		perms:   perms,
	}
}

// Run starts workerCount workers and blocks until ctx is done and every worker
// has returned.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.NotificationMessage, workerCount*10)

	go func() {
		if err := n.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					n.process(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("notifier stopped")
}

func (n *Notifier) process(ctx context.Context, msg queue.NotificationMessage, strategy retry.Strategy) {
	enabled, err := n.prefs.NotificationsEnabled(ctx)
	if err != nil {
		// unknown preference: deliver
		zlog.Logger.Error().Err(err).Str("identifier", msg.Identifier).Msg("failed to read notification preference")
		enabled = true
	}

	if !enabled {
		n.handler.Skip(ctx, msg, "notifications disabled")
		return
	}

	status, err := n.perms.Permission(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("identifier", msg.Identifier).Msg("failed to read permission status")
	} else if status == model.PermissionDenied {
		n.handler.Skip(ctx, msg, "permission denied")
		return
	}

	n.handler.HandleMessage(ctx, msg, strategy)
}
