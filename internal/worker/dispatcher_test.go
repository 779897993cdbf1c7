package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/keepsafe/internal/metrics"
	mocks "github.com/aliskhannn/keepsafe/internal/mocks/worker"
	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/rabbitmq/queue"
)

var dispatchNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func dueRequests(n int) []model.NotificationRequest {
	reqs := make([]model.NotificationRequest, n)
	for i := range reqs {
		reqs[i] = model.NotificationRequest{
			Identifier:   "expiration_" + uuid.New().String(),
			Content:      model.Content{Title: "🚨 Expiration Alert!", Body: fmt.Sprintf("Item %d has expired!", i)},
			Trigger:      model.DelayTrigger(5 * time.Second),
			RegisteredAt: dispatchNow.Add(-time.Minute),
		}
	}

	return reqs
}

func newDispatcher(t *testing.T, batch int, reg prometheus.Registerer) (*Dispatcher, *mocks.MockdueSource, *mocks.Mockpublisher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	src := mocks.NewMockdueSource(ctrl)
	pub := mocks.NewMockpublisher(ctrl)

	d := NewDispatcher(src, pub, metrics.NewDispatch(reg), time.Millisecond, batch)
	d.now = func() time.Time { return dispatchNow }

	return d, src, pub
}

func TestDispatcher_Dispatch_PublishesDue(t *testing.T) {
	d, src, pub := newDispatcher(t, 10, nil)
	reqs := dueRequests(2)

	src.EXPECT().Due(gomock.Any(), dispatchNow, 10).Return(reqs, nil)
	for _, r := range reqs {
		pub.EXPECT().Publish(queue.MessageFromRequest(r), strategy).Return(nil)
	}

	assert.Equal(t, 2, d.dispatch(context.Background(), strategy))
}

func TestDispatcher_Dispatch_DrainsFullBatches(t *testing.T) {
	d, src, pub := newDispatcher(t, 2, nil)

	gomock.InOrder(
		src.EXPECT().Due(gomock.Any(), dispatchNow, 2).Return(dueRequests(2), nil),
		src.EXPECT().Due(gomock.Any(), dispatchNow, 2).Return(dueRequests(1), nil),
	)
	pub.EXPECT().Publish(gomock.Any(), strategy).Return(nil).Times(3)

	assert.Equal(t, 3, d.dispatch(context.Background(), strategy))
}

func TestDispatcher_Dispatch_PublishFailureDropsRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	d, src, pub := newDispatcher(t, 10, reg)

	src.EXPECT().Due(gomock.Any(), dispatchNow, 10).Return(dueRequests(2), nil)
	gomock.InOrder(
		pub.EXPECT().Publish(gomock.Any(), strategy).Return(errors.New("channel closed")),
		pub.EXPECT().Publish(gomock.Any(), strategy).Return(nil),
	)

	assert.Equal(t, 1, d.dispatch(context.Background(), strategy))

	series, err := testutil.GatherAndCount(reg, "keepsafe_dispatch_published_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestDispatcher_Dispatch_SourceError(t *testing.T) {
	d, src, _ := newDispatcher(t, 10, nil)

	src.EXPECT().Due(gomock.Any(), dispatchNow, 10).Return(nil, errors.New("redis down"))

	assert.Equal(t, 0, d.dispatch(context.Background(), strategy))
}

func TestDispatcher_Run_StopsOnCancel(t *testing.T) {
	d, src, _ := newDispatcher(t, 10, nil)

	src.EXPECT().Due(gomock.Any(), dispatchNow, 10).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		d.Run(ctx, strategy)
		close(stopped)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}
}

func TestNewDispatcher_DefaultBatch(t *testing.T) {
	d := NewDispatcher(nil, nil, nil, time.Second, 0)
	assert.Equal(t, defaultBatch, d.batch)
}
