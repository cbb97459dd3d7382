package booking_flow

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ProfileService/internal/domain"
)

// validateDetails проверяет данные клиента перед отправкой бронирования
func validateDetails(d CustomerDetails) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrValidation, domain.MaxCustomerNameLength)
	}

	email := strings.TrimSpace(d.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrValidation, email)
	}

	if utf8.RuneCountInString(d.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrValidation, domain.MaxNotesLength)
	}

	return nil
}
