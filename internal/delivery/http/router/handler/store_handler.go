package handler

import (
	"log/slog"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreSettingsUC usecase.StoreSettingsUsecase
	Logger          *slog.Logger
}

// StoreHandler exposes the store owner's storefront settings.
type StoreHandler struct {
	storeSettingsUC usecase.StoreSettingsUsecase
	logger          *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeSettingsUC: params.StoreSettingsUC,
		logger:          params.Logger,
	}
}

// GetSettings returns the current storefront.
func (h *StoreHandler) GetSettings(c echo.Context) error {
	return response.OK(c, h.storeSettingsUC.CurrentStore())
}

// PutSettings replaces the storefront.
func (h *StoreHandler) PutSettings(c echo.Context) error {
	var req entity.Store
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return response.OK(c, h.storeSettingsUC.SetCurrentStore(req))
}
