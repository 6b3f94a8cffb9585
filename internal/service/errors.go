package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrValidation          = errors.New("validation failed")
	ErrWrongPassword       = errors.New("wrong password")
	ErrHashingPassword     = errors.New("error hashing password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token is revoked")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrLoginOnServer  = errors.New("login on server failed")
	ErrLogoutOnServer = errors.New("logout on server failed")
	ErrNotLoggedIn    = errors.New("not logged in")
)
