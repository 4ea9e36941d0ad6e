package middleware

import (
	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RoleMiddleware admits requests according to the session container.
type RoleMiddleware struct {
	auth usecase.AuthUsecase
}

// NewRoleMiddleware is the constructor for RoleMiddleware.
func NewRoleMiddleware(auth usecase.AuthUsecase) *RoleMiddleware {
	return &RoleMiddleware{auth: auth}
}

// RequireRole rejects signed-out sessions with 401 and sessions in another role with 403.
func (m *RoleMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := m.auth.Snapshot()
			if !state.IsAuthenticated {
				return domainerrors.ErrNotAuthenticated
			}
			if state.Role() != role {
				return domainerrors.ErrRoleForbidden.WithDetails("requires role " + role.String())
			}

			deliverycontext.SetSessionRole(c, role)

			return next(c)
		}
	}
}
