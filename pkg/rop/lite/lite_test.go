package lite

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"testing"

	"github.com/ib-77/demolib/pkg/rop"
	"github.com/ib-77/demolib/pkg/rop/core"
)

func TestRun_SingleWorker(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	input := []int{1, 2, 3, 4, 5}
	results := core.FromChanMany(Run(ctx, core.ToChanManyResults(ctx, input),
		Map(func(ctx context.Context, r int) int { return r * 2 }), 1))

	// one line keeps order
	for i, r := range results {
		if !r.IsSuccess() || r.Result() != input[i]*2 {
			t.Fatalf("at %d expected %d, got success=%v val=%d", i, input[i]*2, r.IsSuccess(), r.Result())
		}
	}
}

func TestTurnout_TryAndFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inputs := []string{"1", "2", "bad", "5"}
	out := core.FromChanMany(
		Finally(ctx,
			Turnout(ctx,
				core.ToChanManyResults(ctx, inputs),
				Try(func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }),
				3),
			FinallyHandlers[int, string]{
				OnSuccess: func(_ context.Context, v int) string { return fmt.Sprintf("val:%d", v) },
				OnError:   func(_ context.Context, err error) string { return "err" },
				OnCancel:  func(_ context.Context, err error) string { return "cancel" },
			}))

	sort.Strings(out)
	want := []string{"err", "val:1", "val:2", "val:5"}
	if fmt.Sprint(out) != fmt.Sprint(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestRun_CancelledContextDrainsInput(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan rop.Result[int], 3)
	in <- rop.Success(1)
	in <- rop.Fail[int](errors.New("x"))
	in <- rop.Success(2)
	close(in)

	results := core.FromChanMany(Run(ctx, in,
		Map(func(ctx context.Context, r int) int { return r * 2 }), 2))

	if len(results) != 3 {
		t.Fatalf("expected every queued input back, got %d", len(results))
	}
	for _, r := range results {
		if !r.IsCancel() || !errors.Is(r.Err(), context.Canceled) {
			t.Fatalf("expected cancelled result, got success=%v err=%v", r.IsSuccess(), r.Err())
		}
	}
}
