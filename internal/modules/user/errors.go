package user

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("user not found")
	ErrUnknownUser = errors.New("no user registered for email")
)
