package core

import (
	"context"

	"github.com/ib-77/demolib/pkg/rop"
	"github.com/ib-77/demolib/pkg/rop/solo"
)

type ToChanHandlers[T any] struct {
	// OnBreak receives the values that were never sent because ctx was done.
	OnBreak func(ctx context.Context, rest []T)
}

func ToChanFromArgsResults[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan rop.Result[T] {
	in := make(chan rop.Result[T])

	go func() {
		defer close(in)

		for i, v := range values {
			if ctx.Err() != nil {
				breakAt(ctx, handlers, values[i:])
				return
			}

			select {
			case in <- solo.Succeed(v):
			case <-ctx.Done():
				breakAt(ctx, handlers, values[i:])
				return
			}
		}
	}()

	return in
}

func breakAt[T any](ctx context.Context, handlers ToChanHandlers[T], rest []T) {
	if handlers.OnBreak != nil {
		handlers.OnBreak(ctx, rest)
	}
}

func ToChanManyResults[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	return ToChanFromArgsResults(ctx, ToChanHandlers[T]{}, values...)
}

func ToChanManyResultsWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan rop.Result[T] {
	return ToChanFromArgsResults(ctx, handlers, values...)
}

// FromChanMany collects everything from out until it is closed.
func FromChanMany[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
