package demolib

import (
	"context"

	"github.com/ib-77/demolib/pkg/rop"
	"github.com/ib-77/demolib/pkg/rop/solo"
)

// DivideByResult is DivideBy on a rail. Failed and cancelled inputs pass
// through untouched.
func (d DemoLib) DivideByResult(ctx context.Context, in rop.Result[int]) rop.Result[float64] {
	return solo.Try(ctx, in, func(_ context.Context, n int) (float64, error) {
		return d.DivideBy(n)
	})
}

func (d DemoLib) NegativeThrowsResult(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return solo.Try(ctx, in, func(_ context.Context, n int) (int, error) {
		return d.NegativeThrows(n)
	})
}

func (d DemoLib) NeverThrowsResult(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return solo.Map(ctx, in, func(_ context.Context, n int) int {
		return d.NeverThrows(n)
	})
}
