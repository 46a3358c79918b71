// Package phone normalises user-entered phone numbers to E.164.
package phone

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "mutuals/internal/domain/errors"
)

var validate = validator.New()

// Normalize strips formatting from raw and returns the E.164 form.
// Numbers without a leading '+' or international "00" prefix are treated as
// national numbers of defaultCountryCode; a single leading trunk '0' is dropped.
func Normalize(raw, defaultCountryCode string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	var digits strings.Builder
	digits.Grow(len(trimmed))
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ', r == '-', r == '.', r == '(', r == ')', r == '+':
		default:
			return "", domainerrors.ErrInvalidPhone.WithDetails("unexpected character in phone number")
		}
	}

	number := digits.String()
	switch {
	case strings.HasPrefix(trimmed, "+"):
	case strings.HasPrefix(number, "00"):
		number = strings.TrimPrefix(number, "00")
	default:
		if defaultCountryCode == "" {
			return "", domainerrors.ErrInvalidPhone.WithDetails("missing country code")
		}
		number = strings.TrimPrefix(defaultCountryCode, "+") + strings.TrimPrefix(number, "0")
	}

	e164 := "+" + number
	if err := Validate(e164); err != nil {
		return "", err
	}

	return e164, nil
}

// Validate checks that s is already in E.164 form.
func Validate(s string) error {
	if err := validate.Var(s, "required,e164"); err != nil {
		return domainerrors.ErrInvalidPhone.WithDetails(s)
	}

	return nil
}
