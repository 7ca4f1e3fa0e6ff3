package demolib

import (
	"context"
	"log/slog"

	"github.com/ib-77/demolib/pkg/rop"
	"github.com/ib-77/demolib/pkg/rop/core"
	"github.com/ib-77/demolib/pkg/rop/lite"
	"github.com/ib-77/demolib/pkg/rop/solo"
)

// Outcome is the result of one input of a batch. Value is meaningful only
// when Err is nil.
type Outcome[T any] struct {
	Input int
	Value T
	Err   error
}

// Option tunes a batch run.
type Option func(*batchConfig)

type batchConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives rejected inputs at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *batchConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// ReciprocalAll runs DivideBy over values. The worker count is taken from
// core.WithWorkerOptions on ctx and defaults to 1. Outcomes are in input
// order; inputs left unprocessed by a cancelled ctx carry ctx.Err().
func (d DemoLib) ReciprocalAll(ctx context.Context, values []int, opts ...Option) []Outcome[float64] {
	return runBatch(ctx, "divide_by", values, d.DivideBy, opts)
}

// CheckAll runs NegativeThrows over values, like ReciprocalAll.
func (d DemoLib) CheckAll(ctx context.Context, values []int, opts ...Option) []Outcome[int] {
	return runBatch(ctx, "negative_throws", values, d.NegativeThrows, opts)
}

type job struct {
	index int
	value int
}

type slot[T any] struct {
	index   int
	outcome Outcome[T]
}

func outcomeOf[T any](input int, r rop.WithError[T]) Outcome[T] {
	if !r.IsSuccess() {
		return Outcome[T]{Input: input, Err: r.Err()}
	}
	return Outcome[T]{Input: input, Value: r.Result()}
}

func runBatch[T any](ctx context.Context, name string, values []int,
	op func(int) (T, error), opts []Option) []Outcome[T] {

	config := batchConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&config)
	}
	logger := config.logger.With("op", name)

	jobs := make([]job, len(values))
	for i, v := range values {
		jobs[i] = job{index: i, value: v}
	}

	stage := lite.Map(func(ctx context.Context, j job) slot[T] {
		rejected := func(ctx context.Context, err error) {
			logger.DebugContext(ctx, "input rejected", "index", j.index, "input", j.value, "error", err)
		}
		v, err := op(j.value)
		r := solo.DoubleTee(ctx, rop.FromError(v, err), nil, rejected, rejected)
		return slot[T]{index: j.index, outcome: outcomeOf[T](j.value, r)}
	})

	// Written by the producer before it closes the feed. Every locomotive
	// waits for that close, so it is settled once the output channel closes.
	var unsent []job
	feed := core.ToChanManyResultsWithHandlers(ctx, core.ToChanHandlers[job]{
		OnBreak: func(ctx context.Context, rest []job) { unsent = rest },
	}, jobs)

	// Inputs a locomotive still holds when ctx is done come back unprocessed.
	handlers := core.CancellationHandlers[job, slot[T]]{
		OnCancel: func(ctx context.Context, inputCh <-chan rop.Result[job], outCh chan<- rop.Result[slot[T]]) {
			for in := range inputCh {
				j := in.Result()
				outCh <- rop.Success(cancelledSlot[T](ctx, j))
			}
		},
	}

	outcomes := make([]Outcome[T], len(values))
	for r := range core.Lines(ctx, feed, stage, handlers, core.GetWorkerMaxCount(ctx, 1)) {
		s := r.Result()
		outcomes[s.index] = s.outcome
	}
	for _, j := range unsent {
		s := cancelledSlot[T](ctx, j)
		outcomes[s.index] = s.outcome
	}

	skipped := 0
	for _, o := range outcomes {
		if rop.IsCancellationError(o.Err) {
			skipped++
		}
	}
	if skipped > 0 {
		logger.DebugContext(ctx, "batch cancelled", "skipped", skipped, "total", len(values), "error", ctx.Err())
	}

	return outcomes
}

func cancelledSlot[T any](ctx context.Context, j job) slot[T] {
	return slot[T]{index: j.index, outcome: Outcome[T]{Input: j.value, Err: ctx.Err()}}
}
