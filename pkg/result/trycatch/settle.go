package trycatch

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/ropresult/pkg/result"
)

// Settle awaits every future and returns their Results in the same order.
// A nil future yields Err(ErrNilAwaitable).
func Settle[T any](ctx context.Context, futures ...*Future[T]) []*result.Result[T, error] {
	out := make([]*result.Result[T, error], len(futures))
	for i, f := range futures {
		if f == nil {
			out[i] = result.Err[T](ErrNilAwaitable)
			continue
		}
		out[i] = f.Await(ctx)
	}
	return out
}

// TryAll runs fns concurrently, at most Limit(ctx, len(fns)) at a time, and
// returns their Results in input order. It never fails: each failure is
// captured in its own Result.
func TryAll[T any](ctx context.Context, fns ...func(ctx context.Context) (T, error)) []*result.Result[T, error] {
	out := make([]*result.Result[T, error], len(fns))
	if len(fns) == 0 {
		return out
	}

	obs := ObserverFrom(ctx)

	var g errgroup.Group
	g.SetLimit(Limit(ctx, len(fns)))

	for i, fn := range fns {
		if fn == nil {
			out[i] = result.Err[T](ErrNilAwaitable)
			continue
		}
		g.Go(func() error {
			out[i] = execute(ctx, obs, uuid.New(), AwaitableFunc[T](fn))
			return nil
		})
	}

	_ = g.Wait()
	return out
}
