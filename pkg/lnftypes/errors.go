package lnftypes

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the active table has no entry for a queried identifier.
var ErrNotFound = errors.New("metric not found")

// ErrNilTable is returned when a nil table is handed to a consumer.
var ErrNilTable = errors.New("look and feel table is nil")

// NotFoundError names the identifier that was missing. It unwraps to ErrNotFound.
type NotFoundError struct {
	Kind string `json:"kind"` // "int", "float", "color" or "font"
	ID   string `json:"id"`
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s metric %s not found", e.Kind, e.ID)
}

// Unwrap allows errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
