package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/api/dto"
	"github.com/aliskhannn/keepsafe/internal/api/respond"
	"github.com/aliskhannn/keepsafe/internal/model"
	productrepo "github.com/aliskhannn/keepsafe/internal/repository/product"
	"github.com/aliskhannn/keepsafe/internal/service/premium"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/product/mock.go -package=mocks
type productService interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (model.Product, error)
	List(ctx context.Context, search string) ([]model.Product, error)
}

type Handler struct {
	service   productService
	validator *validator.Validate
	loc       *time.Location
	now       func() time.Time
}

// NewHandler creates a product handler. Expiration dates are read in loc.
func NewHandler(s productService, v *validator.Validate, loc *time.Location) *Handler {
	return &Handler{service: s, validator: v, loc: loc, now: time.Now}
}

func (h *Handler) Create(c *ginext.Context) {
	p, ok := h.decode(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), p)
	if err != nil {
		h.fail(c, err, "failed to create product")
		return
	}

	respond.Created(c.Writer, dto.NewProductResponse(created, h.now()))
}

func (h *Handler) Update(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, ok := h.decode(c)
	if !ok {
		return
	}
	p.ID = id

	updated, err := h.service.Update(c.Request.Context(), p)
	if err != nil {
		h.fail(c, err, "failed to update product")
		return
	}

	respond.OK(c.Writer, dto.NewProductResponse(updated, h.now()))
}

func (h *Handler) Get(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to get product")
		return
	}

	respond.OK(c.Writer, dto.NewProductResponse(p, h.now()))
}

func (h *Handler) List(c *ginext.Context) {
	products, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.fail(c, err, "failed to list products")
		return
	}

	respond.OK(c.Writer, dto.NewProductResponses(products, h.now()))
}

func (h *Handler) Delete(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete product")
		return
	}

	respond.OK(c.Writer, "product deleted")
}

func (h *Handler) decode(c *ginext.Context) (model.Product, bool) {
	var req dto.ProductRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return model.Product{}, false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return model.Product{}, false
	}

	p, err := req.Product(h.loc)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return model.Product{}, false
	}

	return p, true
}

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, premium.ErrProductLimitReached):
		respond.Fail(c.Writer, http.StatusPaymentRequired, premium.ErrProductLimitReached)
	case errors.Is(err, productrepo.ErrProductNotFound):
		zlog.Logger.Warn().Err(err).Msg("product not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("product not found"))
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
