package demolib

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/demolib/pkg/rop"
	"github.com/ib-77/demolib/pkg/rop/solo"
)

func TestDivideByResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := demo.DivideByResult(ctx, rop.Success(4))
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 0.25, ok.Result())

	zero := demo.DivideByResult(ctx, rop.Success(0))
	require.True(t, zero.IsFailure())
	assert.ErrorIs(t, zero.Err(), ErrInvalidArgument)
}

func TestNegativeThrowsResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := demo.NegativeThrowsResult(ctx, rop.Success(5))
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 5, ok.Result())

	neg := demo.NegativeThrowsResult(ctx, rop.Success(-1))
	require.True(t, neg.IsFailure())
	assert.ErrorIs(t, neg.Err(), ErrRange)
}

func TestNeverThrowsResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := demo.NeverThrowsResult(ctx, rop.Success(-100))
	require.True(t, r.IsSuccess())
	assert.Equal(t, -100, r.Result())
}

func TestResultVariantsShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	upstream := errors.New("upstream")

	failed := rop.Fail[int](upstream)
	assert.ErrorIs(t, demo.DivideByResult(ctx, failed).Err(), upstream)
	assert.ErrorIs(t, demo.NegativeThrowsResult(ctx, failed).Err(), upstream)
	assert.ErrorIs(t, demo.NeverThrowsResult(ctx, failed).Err(), upstream)

	cancelled := rop.Cancel[int](context.Canceled)
	assert.True(t, demo.DivideByResult(ctx, cancelled).IsCancel())
	assert.True(t, demo.NegativeThrowsResult(ctx, cancelled).IsCancel())
	assert.True(t, demo.NeverThrowsResult(ctx, cancelled).IsCancel())
}

func TestResultVariantsCompose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	describe := func(n int) string {
		checked := demo.NegativeThrowsResult(ctx, demo.NeverThrowsResult(ctx, solo.Succeed(n)))
		return solo.Finally(ctx, demo.DivideByResult(ctx, checked),
			func(ctx context.Context, v float64) string { return "ok" },
			func(ctx context.Context, err error) string {
				kind, _ := KindOf(err)
				return kind.String()
			},
			func(ctx context.Context, err error) string { return "cancel" })
	}

	assert.Equal(t, "ok", describe(8))
	assert.Equal(t, "invalid argument", describe(0))
	assert.Equal(t, "range error", describe(-3))
}
