package premium

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/api/dto"
	"github.com/aliskhannn/keepsafe/internal/api/respond"
	"github.com/aliskhannn/keepsafe/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/premium/mock.go -package=mocks
type premiumService interface {
	Status(ctx context.Context) (model.Premium, error)
	SetPremium(ctx context.Context, active bool) error
}

type Handler struct {
	service   premiumService
	validator *validator.Validate
}

func NewHandler(s premiumService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func (h *Handler) Get(c *ginext.Context) {
	status, err := h.service.Status(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get premium status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

func (h *Handler) Set(c *ginext.Context) {
	var req dto.PremiumRequest

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

	if err := h.service.SetPremium(c.Request.Context(), *req.Active); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to set premium status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	h.Get(c)
}
