package usecase

import (
	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// SetPhoneInput stages the phone number from the login screen.
type SetPhoneInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,phone10"`
}

// SetRoleInput stages or switches the role.
type SetRoleInput struct {
	Role entity.Role `json:"role" validate:"required,oneof=customer store delivery"`
}

// VerifyOTPInput carries the code typed on the verification screen.
type VerifyOTPInput struct {
	Code string `json:"code"`
}

// LoginInput signs a known user in directly.
type LoginInput struct {
	User entity.User `json:"user" validate:"required"`
}

// AuthUsecase is the session container.
// Every mutator returns the state it produced.
type AuthUsecase interface {
	Container[entity.AuthState]

	SetPhoneNumber(phone string) entity.AuthState
	SetUserRole(role entity.Role) entity.AuthState
	Login(user entity.User) entity.AuthState
	Logout() entity.AuthState
	SwitchRole(role entity.Role) entity.AuthState
	UpdateUser(patch entity.UserPatch) entity.AuthState

	// VerifyOTP accepts any four digit code and signs in a user built from the
	// staged phone number and role.
	VerifyOTP(input VerifyOTPInput) (*entity.User, error)
}
