package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("no items in cart")
	ErrInvalidUpdate      = errors.New("only status can be updated")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrAmountOverflow     = errors.New("amount exceeds 9999.99")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCheckoutFailed     = errors.New("checkout failed")
)
