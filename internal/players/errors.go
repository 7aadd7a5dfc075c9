package players

import "errors"

var (
	// ErrInvalidID is returned when an identifier is not well-formed for
	// the store's addressing scheme (UUID).
	ErrInvalidID = errors.New("invalid player id")

	// ErrNotFound is returned when a well-formed identifier matches no record.
	ErrNotFound = errors.New("player not found")
)
