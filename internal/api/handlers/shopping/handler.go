package shopping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/api/dto"
	"github.com/aliskhannn/keepsafe/internal/api/respond"
	"github.com/aliskhannn/keepsafe/internal/model"
	shoppingrepo "github.com/aliskhannn/keepsafe/internal/repository/shopping"
	"github.com/aliskhannn/keepsafe/internal/service/premium"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/shopping/mock.go -package=mocks
type shoppingService interface {
	Create(ctx context.Context, item model.ShoppingItem) (model.ShoppingItem, error)
	Toggle(ctx context.Context, id uuid.UUID) (model.ShoppingItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]model.ShoppingItem, error)
}

type Handler struct {
	service   shoppingService
	validator *validator.Validate
}

func NewHandler(s shoppingService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func (h *Handler) Create(c *ginext.Context) {
	var req dto.ShoppingItemRequest

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

	item, err := h.service.Create(c.Request.Context(), req.Item())
	if err != nil {
		h.fail(c, err, "failed to create shopping item")
		return
	}

	respond.Created(c.Writer, item)
}

func (h *Handler) Toggle(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to toggle shopping item")
		return
	}

	respond.OK(c.Writer, item)
}

func (h *Handler) Delete(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete shopping item")
		return
	}

	respond.OK(c.Writer, "shopping item deleted")
}

func (h *Handler) List(c *ginext.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.fail(c, err, "failed to list shopping items")
		return
	}

	if items == nil {
		items = []model.ShoppingItem{}
	}

	respond.OK(c.Writer, items)
}

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, premium.ErrShoppingLimitReached):
		respond.Fail(c.Writer, http.StatusPaymentRequired, premium.ErrShoppingLimitReached)
	case errors.Is(err, shoppingrepo.ErrItemNotFound):
		zlog.Logger.Warn().Err(err).Msg("shopping item not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("shopping item not found"))
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")

	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Interface("idStr", idStr).Msg("invalid id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
