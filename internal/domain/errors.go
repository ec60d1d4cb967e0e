package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrPoolExhausted     = errors.New("key pool exhausted")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrInvalidCredential = errors.New("invalid api key")
	ErrEmailTaken        = errors.New("email already registered")
)
