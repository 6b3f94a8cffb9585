package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrWeakPassword     = errors.New("password must be longer than 8 characters and mix upper case, lower case, digits and symbols")
	ErrEmptyPassword    = errors.New("password is required")
)
