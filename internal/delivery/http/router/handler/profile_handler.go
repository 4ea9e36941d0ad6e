package handler

import (
	"log/slog"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler exposes the user profile container.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// addressAddedResponse carries the new address next to the resulting state.
type addressAddedResponse struct {
	Address entity.Address   `json:"address"`
	State   entity.UserState `json:"state"`
}

// favoriteResponse reports whether a product is a favorite.
type favoriteResponse struct {
	ProductID string `json:"productId"`
	Favorite  bool   `json:"favorite"`
}

// GetProfile returns the profile snapshot.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	return response.OK(c, h.profileUC.Snapshot())
}

// SetProfile replaces the profile; a null user clears it.
func (h *ProfileHandler) SetProfile(c echo.Context) error {
	var req usecase.SetProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	return response.OK(c, h.profileUC.SetProfile(req.Profile))
}

// AddAddress saves a new address under a fresh id.
func (h *ProfileHandler) AddAddress(c echo.Context) error {
	var req entity.AddressInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	state, address := h.profileUC.AddAddress(req)
	if address.ID == "" {
		return domainerrors.ErrProfileNotFound
	}

	return response.Created(c, addressAddedResponse{Address: address, State: state})
}

// UpdateAddress replaces the address named in the path.
func (h *ProfileHandler) UpdateAddress(c echo.Context) error {
	var req entity.Address
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}
	req.ID = c.Param("id")

	if err := h.requireAddress(req.ID); err != nil {
		return err
	}

	return response.OK(c, h.profileUC.UpdateAddress(req))
}

// RemoveAddress deletes an address; removing an unknown id is a no-op.
func (h *ProfileHandler) RemoveAddress(c echo.Context) error {
	return response.OK(c, h.profileUC.RemoveAddress(c.Param("id")))
}

// SetDefaultAddress makes the address named in the path the only default.
func (h *ProfileHandler) SetDefaultAddress(c echo.Context) error {
	id := c.Param("id")
	if err := h.requireAddress(id); err != nil {
		return err
	}

	return response.OK(c, h.profileUC.SetDefaultAddress(id))
}

// AddRecentSearch records a search query.
func (h *ProfileHandler) AddRecentSearch(c echo.Context) error {
	var req usecase.RecentSearchInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid search input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return response.OK(c, h.profileUC.AddRecentSearch(req.Query))
}

// ClearRecentSearches empties the search history.
func (h *ProfileHandler) ClearRecentSearches(c echo.Context) error {
	return response.OK(c, h.profileUC.ClearRecentSearches())
}

// ToggleFavorite flips a product's favorite flag.
func (h *ProfileHandler) ToggleFavorite(c echo.Context) error {
	productID := c.Param("productID")
	state := h.profileUC.ToggleFavoriteProduct(productID)

	return response.OK(c, favoriteResponse{ProductID: productID, Favorite: state.IsFavorite(productID)})
}

// ListFavorites returns the favorited product ids.
func (h *ProfileHandler) ListFavorites(c echo.Context) error {
	return response.OK(c, h.profileUC.Favorites())
}

// IsFavorite reports a product's favorite flag.
func (h *ProfileHandler) IsFavorite(c echo.Context) error {
	productID := c.Param("productID")

	return response.OK(c, favoriteResponse{ProductID: productID, Favorite: h.profileUC.IsFavorite(productID)})
}

func (h *ProfileHandler) requireAddress(id string) error {
	state := h.profileUC.Snapshot()
	if state.User == nil {
		return domainerrors.ErrProfileNotFound
	}
	if _, ok := state.User.FindAddress(id); !ok {
		return domainerrors.ErrAddressNotFound.WithDetails(id)
	}

	return nil
}
