package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidData  = errors.New("invalid input data")
	ErrUnfound      = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNetwork      = errors.New("network error")
)

// APIError is a failed backend call. Message holds the server's error text
// unchanged so it can be shown to the user as is; Kind is one of the sentinels above.
type APIError struct {
	Status  int
	Message string
	Kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}
