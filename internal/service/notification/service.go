package notification

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/model"
	"github.com/aliskhannn/keepsafe/internal/scheduler"
)

var ErrUnknownChannel = errors.New("unknown delivery channel")

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks
type deliveryRepository interface {
	Create(ctx context.Context, d model.Delivery) (uuid.UUID, error)
	List(ctx context.Context, limit int) ([]model.Delivery, error)
}

type permissionStore interface {
	PermissionStatus(ctx context.Context) (model.PermissionStatus, error)
	SetPermissionStatus(ctx context.Context, status model.PermissionStatus) error
}

type expirationScheduler interface {
	Pending(ctx context.Context) ([]model.NotificationRequest, error)
	CancelAll() *scheduler.Completion
}

// Notifier sends a text message to a recipient.
type Notifier interface {
	Send(to string, msg string) error
}

// Channel is a configured delivery channel.
type Channel struct {
	Notifier Notifier
	To       string // recipient: chat id, e-mail address
}

// Service is the notification facade: it exposes the pending requests and the
// permission status, and delivers due notifications over the configured channels.
type Service struct {
	repo      deliveryRepository
	perms     permissionStore
	scheduler expirationScheduler
	channels  map[string]Channel
}

// NewService creates a notification service.
func NewService(
	repo deliveryRepository,
	perms permissionStore,
	s expirationScheduler,
	channels map[string]Channel,
) *Service {
	return &Service{repo: repo, perms: perms, scheduler: s, channels: channels}
}

// Pending returns the requests waiting to fire.
func (s *Service) Pending(ctx context.Context) ([]model.NotificationRequest, error) {
	return s.scheduler.Pending(ctx)
}

// Permission returns the current permission status.
func (s *Service) Permission(ctx context.Context) (model.PermissionStatus, error) {
	status, err := s.perms.PermissionStatus(ctx)
	if err != nil {
		return "", fmt.Errorf("get permission status: %w", err)
	}

	return status, nil
}

// SetPermission stores a new permission status.
func (s *Service) SetPermission(ctx context.Context, status model.PermissionStatus) error {
	if err := s.perms.SetPermissionStatus(ctx, status); err != nil {
		return fmt.Errorf("set permission status: %w", err)
	}

	zlog.Logger.Info().Str("status", string(status)).Msg("notification permission changed")

	return nil
}

// CancelAll removes every pending expiration notification and waits for the
// scheduler to finish.
func (s *Service) CancelAll(ctx context.Context) error {
	if err := s.scheduler.CancelAll().Wait(ctx); err != nil {
		return fmt.Errorf("cancel all notifications: %w", err)
	}

	return nil
}

// Deliveries returns the latest delivery attempts.
func (s *Service) Deliveries(ctx context.Context, limit int) ([]model.Delivery, error) {
	deliveries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	return deliveries, nil
}

// Channels returns the names of the configured channels in a stable order.
func (s *Service) Channels() []string {
	names := make([]string, 0, len(s.channels))
	for name := range s.channels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Send delivers message over channel.
func (s *Service) Send(channel, message string) error {
	ch, ok := s.channels[channel]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}

	if err := ch.Notifier.Send(ch.To, message); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}

// RecordDelivery stores a delivery attempt.
func (s *Service) RecordDelivery(ctx context.Context, d model.Delivery) error {
	if _, err := s.repo.Create(ctx, d); err != nil {
		return fmt.Errorf("record delivery: %w", err)
	}

	return nil
}
