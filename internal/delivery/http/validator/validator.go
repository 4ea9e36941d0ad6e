// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"

	"github.com/go-playground/validator/v10"
)

// minPhoneDigits is the shortest phone number the login screen accepts.
const minPhoneDigits = 10

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with bazaar's custom tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("phone10", validatePhone)

	return &CustomValidator{validate: v}
}

// Validate runs struct validation and reports failures as VALIDATION_FAILED.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate input")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Field()+" failed on "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(msgs, "; "))
}

// validatePhone accepts any formatting as long as at least ten digits remain.
func validatePhone(fl validator.FieldLevel) bool {
	digits := 0
	for _, r := range fl.Field().String() {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	return digits >= minPhoneDigits
}
