package notification

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/metrics"
	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Channels() []string
	Send(channel, message string) error
	RecordDelivery(ctx context.Context, d model.Delivery) error
}

// Handler delivers consumed notification messages over every configured channel.
type Handler struct {
	service notificationService
	metrics *metrics.Dispatch
}

func NewHandler(svc notificationService, m *metrics.Dispatch) *Handler {
	return &Handler{
		service: svc,
		metrics: m,
	}
}

// HandleMessage sends msg over each channel, retrying with strategy, and
// records one delivery per channel.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.NotificationMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Str("identifier", msg.Identifier).Time("fire_at", msg.FireAt).Msg("handling due notification")

	for _, channel := range h.service.Channels() {
		err := retry.Do(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return h.service.Send(channel, msg.Text())
			}
		}, strategy)

		status := model.DeliverySent
		if err != nil {
			status = model.DeliveryFailed
			zlog.Logger.Error().Err(err).Str("identifier", msg.Identifier).Str("channel", channel).Msg("failed to deliver notification")
		} else {
			zlog.Logger.Info().Str("identifier", msg.Identifier).Str("channel", channel).Msg("notification delivered")
		}

		h.record(ctx, msg, channel, status)
	}
}

// Skip records msg as skipped on every channel without sending it.
func (h *Handler) Skip(ctx context.Context, msg queue.NotificationMessage, reason string) {
	zlog.Logger.Info().Str("identifier", msg.Identifier).Str("reason", reason).Msg("notification skipped")

	for _, channel := range h.service.Channels() {
		h.record(ctx, msg, channel, model.DeliverySkipped)
	}
}

func (h *Handler) record(ctx context.Context, msg queue.NotificationMessage, channel, status string) {
	h.metrics.IncDelivery(channel, status)

	d := model.Delivery{
		Identifier: msg.Identifier,
		ProductID:  msg.ProductID,
		Title:      msg.Title,
		Body:       msg.Body,
		Channel:    channel,
		Status:     status,
	}

	// ctx may already be cancelled during shutdown; the row should still land.
	if err := h.service.RecordDelivery(context.WithoutCancel(ctx), d); err != nil {
		zlog.Logger.Error().Err(err).Str("identifier", msg.Identifier).Msgf("failed to record delivery status=%s", status)
	}
}
