package impl

import (
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const otpLength = 4

// deliveryStartingBalance is the wallet a new delivery partner session starts with.
var deliveryStartingBalance = decimal.NewFromInt(2500)

// authService implements the AuthUsecase interface.
type authService struct {
	*stateStore[entity.AuthState]

	logger *slog.Logger
}

// NewAuthService is the constructor for authService. The session starts signed out.
func NewAuthService(logger *slog.Logger) usecase.AuthUsecase {
	return &authService{
		stateStore: newStateStore(entity.AuthState{}, entity.AuthState.Clone),
		logger:     logger,
	}
}

func (srv *authService) SetPhoneNumber(phone string) entity.AuthState {
	srv.logger.Debug("Staging phone number")

	return srv.update(func(s entity.AuthState) entity.AuthState { return s.SetPhoneNumber(phone) })
}

func (srv *authService) SetUserRole(role entity.Role) entity.AuthState {
	srv.logger.Debug("Staging role", "role", role)

	return srv.update(func(s entity.AuthState) entity.AuthState { return s.SetUserRole(role) })
}

// Login signs user in. All session fields change in one step.
func (srv *authService) Login(user entity.User) entity.AuthState {
	srv.logger.Info("User signed in", "userID", user.ID, "role", user.Role)

	return srv.update(func(s entity.AuthState) entity.AuthState { return s.Login(user) })
}

// Logout clears the whole session, staging fields included.
func (srv *authService) Logout() entity.AuthState {
	srv.logger.Info("User signed out")

	return srv.update(func(s entity.AuthState) entity.AuthState { return s.Logout() })
}

func (srv *authService) SwitchRole(role entity.Role) entity.AuthState {
	srv.logger.Info("Switching role", "role", role)

	return srv.update(func(s entity.AuthState) entity.AuthState { return s.SwitchRole(role) })
}

func (srv *authService) UpdateUser(patch entity.UserPatch) entity.AuthState {
	srv.logger.Debug("Updating signed-in user")

	return srv.update(func(s entity.AuthState) entity.AuthState { return s.UpdateUser(patch) })
}

// VerifyOTP checks the code shape only; delivery of the code happens out of band.
func (srv *authService) VerifyOTP(input usecase.VerifyOTPInput) (*entity.User, error) {
	if !isOTPCode(input.Code) {
		return nil, errors.WithStack(domainerrors.ErrInvalidOTP)
	}

	var user entity.User
	srv.update(func(s entity.AuthState) entity.AuthState {
		role := s.Role()
		if !role.IsValid() {
			role = entity.RoleCustomer
		}
		user = newSessionUser(s.PhoneNumber, role)

		return s.Login(user)
	})

	srv.logger.Info("OTP verified", "userID", user.ID, "role", user.Role)

	return &user, nil
}

func isOTPCode(code string) bool {
	if len(code) != otpLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}

	return true
}

func newSessionUser(phone string, role entity.Role) entity.User {
	user := entity.User{
		ID:    uuid.NewString(),
		Phone: phone,
		Role:  role,
	}

	switch role {
	case entity.RoleStore:
		user.Name = "Store Owner"
		user.Email = "store@example.com"
	case entity.RoleDelivery:
		user.Name = "Delivery Partner"
		user.Email = "delivery@example.com"
		user.Wallet = &entity.Wallet{Balance: deliveryStartingBalance}
	default:
		user.Name = "Customer"
		user.Email = "customer@example.com"
	}

	return user
}
