package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrLikeNotFound = errors.New("like not found")
	ErrAlreadyLiked = errors.New("post already liked")
	ErrForbidden    = errors.New("forbidden")
)

// StoreError wraps any persistence-layer failure with the operation that hit
// it. Handlers map it to a 500 and must never expose the wrapped cause.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
