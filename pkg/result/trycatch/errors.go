package trycatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/ropresult/pkg/result"
)

var (
	ErrNilAwaitable = errors.New("trycatch: awaitable is nil")
	ErrChanClosed   = errors.New("trycatch: channel closed without a value")
)

// PanicError is the failure recorded when a computation panics with a value
// that is not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("trycatch: panic: %v", e.Value)
}

// ErrContextDone is the failure recorded when a context ends before a value
// could be awaited.
type ErrContextDone struct {
	// Err is the return value of context.Cause(ctx)
	Err error
}

func (e *ErrContextDone) Error() string {
	return fmt.Sprintf("context done: %v", e.Err)
}

// Unwrap returns e.Err that is context.Cause(ctx).
func (e *ErrContextDone) Unwrap() error {
	return e.Err
}

// IsCancellationError reports whether err comes from a cancelled or expired
// context.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// panicError turns a recovered panic value into the failure to record.
// Misuse of the result package is re-raised, it is a programming error and
// never becomes a Result.
func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		if errors.Is(err, result.ErrNotConstructed) {
			panic(err)
		}
		return err
	}
	return &PanicError{Value: rec}
}

func isNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.Map, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}
