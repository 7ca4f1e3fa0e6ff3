package rop

import (
	"context"
	"errors"
)

// IsCancellationError reports whether err stems from a done context.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// FromError builds a Result from the usual (value, error) pair. Context
// errors become cancellations.
func FromError[T any](v T, err error) Result[T] {
	if err == nil {
		return Success(v)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}
