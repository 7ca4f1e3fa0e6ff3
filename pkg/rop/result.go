package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is the value carried along a rail: either a value, a failure or a
// cancellation. The zero Result is neither successful nor failed.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
}

func newResult[T any](value T, err error, success, cancel bool) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		err:       err,
		isSuccess: success,
		isCancel:  cancel,
	}
}

func Success[T any](v T) Result[T] {
	return newResult(v, nil, true, false)
}

func Fail[T any](err error) Result[T] {
	var zero T
	return newResult(zero, err, false, false)
}

func Cancel[T any](err error) Result[T] {
	var zero T
	return newResult(zero, err, false, true)
}

// CancelFrom re-types a cancelled or failed result, keeping its identity.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		isSuccess: false,
		isCancel:  from.isCancel,
	}
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports a failed, not cancelled, result.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel && r.err != nil
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
