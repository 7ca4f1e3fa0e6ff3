package lite

import (
	"context"

	"github.com/ib-77/demolib/pkg/rop"
	"github.com/ib-77/demolib/pkg/rop/core"
	"github.com/ib-77/demolib/pkg/rop/solo"
)

// Stage turns one result into the next.
type Stage[In, Out any] func(ctx context.Context, input rop.Result[In]) rop.Result[Out]

func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T], stage Stage[T, T], lines int) <-chan rop.Result[T] {
	return core.Lines(ctx, inputCh, stage, core.CancelRemaining[T, T](), lines)
}

func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], stage Stage[In, Out],
	lines int) <-chan rop.Result[Out] {
	return core.Lines(ctx, inputCh, stage, core.CancelRemaining[In, Out](), lines)
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Stage[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, input, mapOnSuccess)
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	}
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finally collapses every result from input. It never drops a result, so the
// caller must drain the returned channel.
func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)
		for in := range input {
			out <- solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)
		}
	}()

	return out
}
