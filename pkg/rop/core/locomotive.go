package core

import (
	"context"
	"sync"

	"github.com/ib-77/demolib/pkg/rop"
)

type CancellationHandlers[In, Out any] struct {
	// OnCancel runs once when the locomotive stops because ctx is done.
	OnCancel func(ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out])
}

// Locomotive pulls results from inputCh, runs engine on each and pushes the
// outcome to outCh until inputCh closes or ctx is done. The reader of outCh
// must keep draining it until it is closed.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	engine func(ctx context.Context, input rop.Result[In]) rop.Result[Out],
	handlers CancellationHandlers[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	stop := func() {
		if handlers.OnCancel != nil {
			handlers.OnCancel(ctx, inputCh, outCh)
		}
	}

	for {
		if ctx.Err() != nil {
			stop()
			return
		}

		select {
		case <-ctx.Done():
			stop()
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}
			outCh <- engine(ctx, in)
		}
	}
}

// CancelRemaining drains whatever is left on inputCh as cancelled results.
// Inputs that were already cancelled keep their identity.
func CancelRemaining[In, Out any]() CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancel: func(ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out]) {
			for in := range inputCh {
				if in.IsCancel() {
					outCh <- rop.CancelFrom[In, Out](in)
				} else {
					outCh <- rop.Cancel[Out](ctx.Err())
				}
			}
		},
	}
}

// Lines starts n locomotives over the same input and closes the returned
// channel once all of them have stopped.
func Lines[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine func(ctx context.Context, input rop.Result[In]) rop.Result[Out],
	handlers CancellationHandlers[In, Out], n int) <-chan rop.Result[Out] {

	if n < 1 {
		n = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for range n {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
