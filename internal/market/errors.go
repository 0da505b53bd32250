package market

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrOwnListing         = errors.New("cannot buy your own listing")
	ErrNotAvailable       = errors.New("listing is not available")
	ErrInvalidInput       = errors.New("invalid input")
)
