package service

import "errors"

var (
	// ErrValidation wraps every input rejected before reaching the store.
	ErrValidation = errors.New("validation failed")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrEmptyOperator           = errors.New("operator is required to issue a token")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
