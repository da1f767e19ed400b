package trycatch

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/ib-77/ropresult/pkg/result"
)

var log = logging.Logger("trycatch")

// TryCatch calls fn and captures its outcome: a returned error or a panic
// becomes Err, a value becomes Ok.
func TryCatch[T any](fn func() (T, error)) (res *result.Result[T, error]) {
	defer func() {
		if rec := recover(); rec != nil {
			err := panicError(rec)
			log.Debugw("recovered panic", "error", err)
			res = result.Err[T](err)
		}
	}()
	v, err := fn()
	return From(v, err)
}

// Catch calls fn, which reports failure only by panicking.
func Catch[T any](fn func() T) *result.Result[T, error] {
	return TryCatch(func() (T, error) {
		return fn(), nil
	})
}

// From wraps a (value, error) pair.
func From[T any](value T, err error) *result.Result[T, error] {
	if err != nil {
		return result.Err[T](err)
	}
	return result.Ok[error](value)
}
