package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError is anything that holds either a value or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
