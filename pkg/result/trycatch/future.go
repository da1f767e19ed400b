package trycatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/ib-77/ropresult/pkg/result"
)

// Awaitable is any in-flight operation whose outcome can be awaited.
type Awaitable[T any] interface {
	Await(ctx context.Context) (T, error)
}

// AwaitableFunc converts func(context.Context) (T, error) to Awaitable.
type AwaitableFunc[T any] func(ctx context.Context) (T, error)

func (f AwaitableFunc[T]) Await(ctx context.Context) (T, error) {
	return f(ctx)
}

// Future is the pending Result of an asynchronous computation. It always
// settles to a Result: errors and panics of the computation become Err.
type Future[T any] struct {
	id   uuid.UUID
	done chan struct{}
	res  *result.Result[T, error]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
}

func (f *Future[T]) settle(res *result.Result[T, error]) {
	f.res = res
	close(f.done)
}

// ID identifies the computation in observer events and spans.
func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

// Done returns a channel closed once the Future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the Future settles and returns its Result.
func (f *Future[T]) Wait() *result.Result[T, error] {
	<-f.done
	return f.res
}

// Await is Wait bounded by ctx. If ctx ends first it returns an Err holding
// *ErrContextDone; the computation itself keeps running.
func (f *Future[T]) Await(ctx context.Context) *result.Result[T, error] {
	select {
	case <-f.done:
		return f.res
	default:
	}

	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		log.Debugw("await abandoned before settlement", "id", f.id, "cause", context.Cause(ctx))
		return result.Err[T, error](&ErrContextDone{Err: context.Cause(ctx)})
	}
}

// TryCatchAsync starts fn on its own goroutine and returns its Future.
func TryCatchAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	return FromAwaitable[T](ctx, AwaitableFunc[T](fn))
}

// FromAwaitable awaits a on its own goroutine and returns its Future.
// A nil awaitable settles to Err(ErrNilAwaitable).
func FromAwaitable[T any](ctx context.Context, a Awaitable[T]) *Future[T] {
	f := newFuture[T]()

	if isNil(a) {
		f.settle(result.Err[T](ErrNilAwaitable))
		return f
	}

	obs := ObserverFrom(ctx)
	go func() {
		f.settle(execute(ctx, obs, f.id, a))
	}()

	return f
}

// FromChan settles with the first value received from ch. A channel closed
// without a value settles to Err(ErrChanClosed), an ended ctx to
// Err(*ErrContextDone).
func FromChan[T any](ctx context.Context, ch <-chan T) *Future[T] {
	return FromAwaitable[T](ctx, AwaitableFunc[T](func(ctx context.Context) (T, error) {
		var zero T
		select {
		case v, ok := <-ch:
			if !ok {
				return zero, ErrChanClosed
			}
			return v, nil
		case <-ctx.Done():
			return zero, &ErrContextDone{Err: context.Cause(ctx)}
		}
	}))
}

func execute[T any](ctx context.Context, obs *Observer, id uuid.UUID, a Awaitable[T]) *result.Result[T, error] {
	ctx, finish := obs.begin(ctx, id)
	res, panicked := await(ctx, a)

	failure, _ := res.Err()
	if panicked {
		log.Debugw("computation panicked", "id", id, "error", failure)
	}
	finish(failure, panicked)

	return res
}

func await[T any](ctx context.Context, a Awaitable[T]) (res *result.Result[T, error], panicked bool) {
	defer func() {
		if rec := recover(); rec != nil {
			res, panicked = result.Err[T](panicError(rec)), true
		}
	}()
	v, err := a.Await(ctx)
	return From(v, err), false
}
