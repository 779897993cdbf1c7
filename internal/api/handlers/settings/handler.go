package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/api/dto"
	"github.com/aliskhannn/keepsafe/internal/api/respond"
	"github.com/aliskhannn/keepsafe/internal/model"
	settingssvc "github.com/aliskhannn/keepsafe/internal/service/settings"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/settings/mock.go -package=mocks
type settingsService interface {
	Get(ctx context.Context) (model.Settings, error)
	Update(ctx context.Context, s model.Settings) error
	Reset(ctx context.Context) (model.Settings, error)
	Export(ctx context.Context) (map[string]any, error)
	Import(ctx context.Context, values map[string]any) (model.Settings, error)
}

type Handler struct {
	service   settingsService
	validator *validator.Validate
}

func NewHandler(s settingsService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func (h *Handler) Get(c *ginext.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to get settings")
		return
	}

	respond.OK(c.Writer, s)
}

func (h *Handler) Update(c *ginext.Context) {
	var req dto.SettingsRequest

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

	s := req.Settings()
	if err := h.service.Update(c.Request.Context(), s); err != nil {
		h.fail(c, err, "failed to update settings")
		return
	}

	respond.OK(c.Writer, s)
}

func (h *Handler) Reset(c *ginext.Context) {
	s, err := h.service.Reset(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to reset settings")
		return
	}

	respond.OK(c.Writer, s)
}

func (h *Handler) Export(c *ginext.Context) {
	values, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to export settings")
		return
	}

	respond.OK(c.Writer, values)
}

func (h *Handler) Import(c *ginext.Context) {
	var values map[string]any

	if err := json.NewDecoder(c.Request.Body).Decode(&values); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	s, err := h.service.Import(c.Request.Context(), values)
	if err != nil {
		h.fail(c, err, "failed to import settings")
		return
	}

	respond.OK(c.Writer, s)
}

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	if errors.Is(err, settingssvc.ErrInvalidSetting) {
		zlog.Logger.Warn().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	zlog.Logger.Error().Err(err).Msg(msg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
