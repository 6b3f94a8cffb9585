package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-account-keeper/models"
)

// Field names accepted by AccountValidator.Validate.
const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
	// FieldPassword requires a password of minPasswordLength or more.
	FieldPassword = "password"
	// FieldOptionalPassword applies FieldPassword only when a password is set.
	FieldOptionalPassword = "optional password"
	// FieldPasswordStrength is the admin client rule for new passwords.
	FieldPasswordStrength = "password strength"
)

const (
	minPasswordLength       = 6
	strongPasswordMinLength = 9
)

var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// AccountValidator validates models.Account and models.Credentials.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields an account is
// checked for name, email and password, credentials for email and a
// non-empty password.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(value, fields...)
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAccount(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAccount(account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if account.ID <= 0 {
				return ErrInvalidAccountID
			}
		case FieldName:
			if strings.TrimSpace(account.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !IsValidEmail(account.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(account.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldOptionalPassword:
			if account.Password != "" && len(account.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldPasswordStrength:
			if !IsStrongPassword(account.Password) {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateCredentials(credentials models.Credentials) error {
	if !IsValidEmail(credentials.Email) {
		return ErrInvalidEmail
	}
	if credentials.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

// IsValidEmail reports whether email looks like a deliverable address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStrongPassword requires more than 8 characters with at least one upper
// case letter, one lower case letter, one digit and one other symbol.
func IsStrongPassword(password string) bool {
	if len(password) < strongPasswordMinLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	return upper && lower && digit && symbol
}
