package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/api/dto"
	"github.com/aliskhannn/keepsafe/internal/api/respond"
	"github.com/aliskhannn/keepsafe/internal/model"
	deliveryrepo "github.com/aliskhannn/keepsafe/internal/repository/delivery"
)

const (
	defaultDeliveriesLimit = 50
	maxDeliveriesLimit     = 500
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Pending(ctx context.Context) ([]model.NotificationRequest, error)
	Permission(ctx context.Context) (model.PermissionStatus, error)
	SetPermission(ctx context.Context, status model.PermissionStatus) error
	CancelAll(ctx context.Context) error
	Deliveries(ctx context.Context, limit int) ([]model.Delivery, error)
}

type productResyncer interface {
	Resync(ctx context.Context) (int, error)
}

type Handler struct {
	service   notificationService
	products  productResyncer
	validator *validator.Validate
}

func NewHandler(s notificationService, p productResyncer, v *validator.Validate) *Handler {
	return &Handler{service: s, products: p, validator: v}
}

func (h *Handler) Pending(c *ginext.Context) {
	pending, err := h.service.Pending(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list pending notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.NewPendingNotifications(pending))
}

func (h *Handler) Permission(c *ginext.Context) {
	status, err := h.service.Permission(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get permission status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.PermissionRequest{Status: status})
}

func (h *Handler) SetPermission(c *ginext.Context) {
	var req dto.PermissionRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if err := h.service.SetPermission(c.Request.Context(), req.Status); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to set permission status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, req)
}

func (h *Handler) Reschedule(c *ginext.Context) {
	n, err := h.products.Resync(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to reschedule notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]int{"products": n})
}

func (h *Handler) CancelAll(c *ginext.Context) {
	if err := h.service.CancelAll(c.Request.Context()); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to cancel notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notifications cancelled")
}

func (h *Handler) Deliveries(c *ginext.Context) {
	limit := defaultDeliveriesLimit

	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxDeliveriesLimit {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("limit must be between 1 and %d", maxDeliveriesLimit))
			return
		}
		limit = n
	}

	deliveries, err := h.service.Deliveries(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, deliveryrepo.ErrNoDeliveriesFound) {
			respond.OK(c.Writer, []model.Delivery{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to list deliveries")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, deliveries)
}
