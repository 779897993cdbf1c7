package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/keepsafe/internal/mocks/worker"
	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/rabbitmq/queue"
)

var strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

func dueMessage() queue.NotificationMessage {
	id := uuid.New()

	return queue.NotificationMessage{
		Identifier: "expiration_" + id.String(),
		ProductID:  &id,
		Title:      "⏰ Expiration Reminder",
		Body:       "Cheese expires in 3 days!",
		FireAt:     time.Now(),
	}
}

type notifierMocks struct {
	queue   *mocks.MocknotifQueue
	handler *mocks.MockmessageHandler
	prefs   *mocks.Mockpreferences
	perms   *mocks.Mockpermissions
}

func newNotifier(t *testing.T) (*Notifier, notifierMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := notifierMocks{
		queue:   mocks.NewMocknotifQueue(ctrl),
		handler: mocks.NewMockmessageHandler(ctrl),
		prefs:   mocks.NewMockpreferences(ctrl),
		perms:   mocks.NewMockpermissions(ctrl),
	}

	return NewNotifier(m.queue, m.handler, m.prefs, m.perms), m
}

// runWith feeds msg through a single worker and waits until the notifier stops.
func runWith(t *testing.T, n *Notifier, q *mocks.MocknotifQueue, msg queue.NotificationMessage, handled chan struct{}) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.NotificationMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	stopped := make(chan struct{})
	go func() {
		n.Run(ctx, strategy, 1)
		close(stopped)
	}()

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("message was not handled")
	}

	cancel()
	<-stopped
}

func TestNotifier_Run_HandleMessage(t *testing.T) {
	n, m := newNotifier(t)
	msg := dueMessage()
	handled := make(chan struct{})

	m.prefs.EXPECT().NotificationsEnabled(gomock.Any()).Return(true, nil)
	m.perms.EXPECT().Permission(gomock.Any()).Return(model.PermissionAuthorized, nil)
	m.handler.EXPECT().HandleMessage(gomock.Any(), msg, strategy).Do(
		func(context.Context, queue.NotificationMessage, retry.Strategy) { close(handled) },
	)

	runWith(t, n, m.queue, msg, handled)
}

func TestNotifier_Run_NotificationsDisabled(t *testing.T) {
	n, m := newNotifier(t)
	msg := dueMessage()
	handled := make(chan struct{})

	m.prefs.EXPECT().NotificationsEnabled(gomock.Any()).Return(false, nil)
	m.handler.EXPECT().Skip(gomock.Any(), msg, "notifications disabled").Do(
		func(context.Context, queue.NotificationMessage, string) { close(handled) },
	)

	runWith(t, n, m.queue, msg, handled)
}

func TestNotifier_Run_PermissionDenied(t *testing.T) {
	n, m := newNotifier(t)
	msg := dueMessage()
	handled := make(chan struct{})

	m.prefs.EXPECT().NotificationsEnabled(gomock.Any()).Return(true, nil)
	m.perms.EXPECT().Permission(gomock.Any()).Return(model.PermissionDenied, nil)
	m.handler.EXPECT().Skip(gomock.Any(), msg, "permission denied").Do(
		func(context.Context, queue.NotificationMessage, string) { close(handled) },
	)

	runWith(t, n, m.queue, msg, handled)
}

func TestNotifier_Run_LookupErrorsStillDeliver(t *testing.T) {
	n, m := newNotifier(t)
	msg := dueMessage()
	handled := make(chan struct{})

	m.prefs.EXPECT().NotificationsEnabled(gomock.Any()).Return(false, errors.New("db down"))
	m.perms.EXPECT().Permission(gomock.Any()).Return(model.PermissionStatus(""), errors.New("redis down"))
	m.handler.EXPECT().HandleMessage(gomock.Any(), msg, strategy).Do(
		func(context.Context, queue.NotificationMessage, retry.Strategy) { close(handled) },
	)

	runWith(t, n, m.queue, msg, handled)
}

func TestNotifier_Run_StopsOnCancel(t *testing.T) {
	n, m := newNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())

	m.queue.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).Return(errors.New("connection closed")).AnyTimes()

	stopped := make(chan struct{})
	go func() {
		n.Run(ctx, strategy, 3)
		close(stopped)
	}()

	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("notifier did not stop")
	}
}
