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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler exposes the session container.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// GetState returns the session snapshot.
func (h *AuthHandler) GetState(c echo.Context) error {
	return response.OK(c, h.authUC.Snapshot())
}

// SetPhone stages the phone number typed on the login screen.
func (h *AuthHandler) SetPhone(c echo.Context) error {
	var req usecase.SetPhoneInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid phone input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return response.OK(c, h.authUC.SetPhoneNumber(req.PhoneNumber))
}

// SetRole stages the role picked on the role selection screen.
func (h *AuthHandler) SetRole(c echo.Context) error {
	var req usecase.SetRoleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return response.OK(c, h.authUC.SetUserRole(req.Role))
}

// VerifyOTP signs in with the staged phone number and role.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req usecase.VerifyOTPInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid OTP input")
	}

	user, err := h.authUC.VerifyOTP(req)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// Login signs a known user in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !req.User.Role.IsValid() {
		return domainerrors.ErrInvalidRole.WithDetails(req.User.Role.String())
	}

	return response.OK(c, h.authUC.Login(req.User))
}

// Logout clears the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.OK(c, h.authUC.Logout())
}

// SwitchRole moves the signed-in user to another role.
func (h *AuthHandler) SwitchRole(c echo.Context) error {
	var req usecase.SetRoleInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return response.OK(c, h.authUC.SwitchRole(req.Role))
}

// UpdateUser merges the patch into the signed-in user.
func (h *AuthHandler) UpdateUser(c echo.Context) error {
	var patch entity.UserPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "Invalid user patch")
	}
	if patch.Role != nil && !patch.Role.IsValid() {
		return domainerrors.ErrInvalidRole.WithDetails(patch.Role.String())
	}

	return response.OK(c, h.authUC.UpdateUser(patch))
}
