package services

import "errors"

var (
	ErrMissingField       = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOrder       = errors.New("order must contain at least one item")
	ErrTotalMismatch      = errors.New("order total does not match item prices")
)
