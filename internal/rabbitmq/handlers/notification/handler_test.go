package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/keepsafe/internal/metrics"
	mocks "github.com/aliskhannn/keepsafe/internal/mocks/rabbitmq/handlers/notification"
	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/rabbitmq/queue"
)

var strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

func message() queue.NotificationMessage {
	id := uuid.New()

	return queue.NotificationMessage{
		Identifier: "expiration_" + id.String(),
		ProductID:  &id,
		Title:      "🚨 Expiration Alert!",
		Body:       "Milk expires tomorrow!",
		FireAt:     time.Now(),
	}
}

func delivery(msg queue.NotificationMessage, channel, status string) model.Delivery {
	return model.Delivery{
		Identifier: msg.Identifier,
		ProductID:  msg.ProductID,
		Title:      msg.Title,
		Body:       msg.Body,
		Channel:    channel,
		Status:     status,
	}
}

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(mockService, nil)

	msg := message()

	mockService.EXPECT().Channels().Return([]string{"telegram"})
	mockService.EXPECT().
		Send("telegram", "🚨 Expiration Alert!\nMilk expires tomorrow!").
		Return(nil)
	mockService.EXPECT().
		RecordDelivery(gomock.Any(), delivery(msg, "telegram", model.DeliverySent)).
		Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_OneChannelFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMocknotificationService(ctrl)
	reg := prometheus.NewRegistry()
	m := metrics.NewDispatch(reg)
	h := NewHandler(mockService, m)

	msg := message()

	mockService.EXPECT().Channels().Return([]string{"email", "telegram"})
	mockService.EXPECT().Send("email", msg.Text()).Return(errors.New("smtp down"))
	mockService.EXPECT().Send("telegram", msg.Text()).Return(nil)
	mockService.EXPECT().
		RecordDelivery(gomock.Any(), delivery(msg, "email", model.DeliveryFailed)).
		Return(nil)
	mockService.EXPECT().
		RecordDelivery(gomock.Any(), delivery(msg, "telegram", model.DeliverySent)).
		Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)

	series, err := testutil.GatherAndCount(reg, "keepsafe_dispatch_deliveries_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestHandler_HandleMessage_RecordFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(mockService, nil)

	msg := message()

	mockService.EXPECT().Channels().Return([]string{"telegram"})
	mockService.EXPECT().Send("telegram", msg.Text()).Return(nil)
	mockService.EXPECT().RecordDelivery(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(mockService, nil)

	msg := message()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Send is never reached, the failure is still recorded
	mockService.EXPECT().Channels().Return([]string{"telegram"})
	mockService.EXPECT().
		RecordDelivery(gomock.Any(), delivery(msg, "telegram", model.DeliveryFailed)).
		Return(nil)

	h.HandleMessage(ctx, msg, strategy)
}

func TestHandler_Skip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(mockService, nil)

	msg := message()

	mockService.EXPECT().Channels().Return([]string{"email", "telegram"})
	mockService.EXPECT().
		RecordDelivery(gomock.Any(), delivery(msg, "email", model.DeliverySkipped)).
		Return(nil)
	mockService.EXPECT().
		RecordDelivery(gomock.Any(), delivery(msg, "telegram", model.DeliverySkipped)).
		Return(nil)

	h.Skip(context.Background(), msg, "notifications disabled")
}
