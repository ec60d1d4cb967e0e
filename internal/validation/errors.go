package validation

import "errors"

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrEmptyUsername       = errors.New("username is required")
	ErrUsernameTooLong     = errors.New("username exceeds maximum length")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidKey          = errors.New("invalid key")
)
