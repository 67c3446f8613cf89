package repository

import "errors"

// Sentinel errors returned by repository implementations. Services and
// handlers match on these with errors.Is to pick the response status.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrOutOfStock        = errors.New("out of stock")
)
