package result

import "fmt"

type state uint8

const (
	unset state = iota
	okState
	errState
)

// Result holds either a success value of type T or a failure value of type E.
//
// Only one slot is active at a time; the inactive slot always holds the zero
// value. The zero Result is not valid: every method panics with
// ErrNotConstructed when called on it or on a nil pointer.
type Result[T, E any] struct {
	value T
	err   E
	state state
}

// Ok returns a new Result in the Ok state holding value.
//
// E comes first so callers can write Ok[error](v) and let T be inferred.
func Ok[E, T any](value T) *Result[T, E] {
	return &Result[T, E]{value: value, state: okState}
}

// Err returns a new Result in the Err state holding failure.
func Err[T, E any](failure E) *Result[T, E] {
	return &Result[T, E]{err: failure, state: errState}
}

func (r *Result[T, E]) mustBeConstructed() {
	if r == nil || r.state == unset {
		panic(ErrNotConstructed)
	}
}

// IsOk reports whether r holds a success value.
func (r *Result[T, E]) IsOk() bool {
	r.mustBeConstructed()
	return r.state == okState
}

// IsErr reports whether r holds a failure value.
func (r *Result[T, E]) IsErr() bool {
	r.mustBeConstructed()
	return r.state == errState
}

// Ok returns the success value and true, or the zero value and false.
func (r *Result[T, E]) Ok() (T, bool) {
	r.mustBeConstructed()
	return r.value, r.state == okState
}

// Err returns the failure value and true, or the zero value and false.
func (r *Result[T, E]) Err() (E, bool) {
	r.mustBeConstructed()
	return r.err, r.state == errState
}

func (r *Result[T, E]) Get() (T, E) {
	r.mustBeConstructed()
	return r.value, r.err
}

// Expect returns the success value. On Err it panics with the failure value.
func (r *Result[T, E]) Expect() T {
	r.mustBeConstructed()
	if r.state == okState {
		return r.value
	}
	panic(r.err)
}

func (r *Result[T, E]) Unwrap() T {
	return r.Expect()
}

// UnwrapOr returns the success value, or def on Err.
func (r *Result[T, E]) UnwrapOr(def T) T {
	r.mustBeConstructed()
	if r.state == okState {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or the result of defFn. defFn is
// only called on Err.
func (r *Result[T, E]) UnwrapOrElse(defFn func() T) T {
	r.mustBeConstructed()
	if r.state == okState {
		return r.value
	}
	return defFn()
}

// Or returns r itself when it is Ok, otherwise other.
func (r *Result[T, E]) Or(other *Result[T, E]) *Result[T, E] {
	r.mustBeConstructed()
	if r.state == errState {
		return other
	}
	return r
}

// OrElse returns r itself when it is Ok, otherwise the Result produced by fn.
func (r *Result[T, E]) OrElse(fn func() *Result[T, E]) *Result[T, E] {
	r.mustBeConstructed()
	if r.state == errState {
		return fn()
	}
	return r
}

// OkOrInsert turns r into Ok(value) if it is Err. An Ok value is kept.
// r is modified in place and returned.
func (r *Result[T, E]) OkOrInsert(value T) *Result[T, E] {
	r.mustBeConstructed()
	if r.state == errState {
		r.setOk(value)
	}
	return r
}

// OkOrInsertWith is OkOrInsert with a lazily produced value. fn is only
// called when r is Err.
func (r *Result[T, E]) OkOrInsertWith(fn func() T) *Result[T, E] {
	r.mustBeConstructed()
	if r.state == errState {
		r.setOk(fn())
	}
	return r
}

// Replace turns r into Ok(value) regardless of its state and returns r.
func (r *Result[T, E]) Replace(value T) *Result[T, E] {
	r.mustBeConstructed()
	r.setOk(value)
	return r
}

// ReplaceErr turns r into Err(failure) regardless of its state and returns r.
func (r *Result[T, E]) ReplaceErr(failure E) *Result[T, E] {
	r.mustBeConstructed()
	var zero T
	r.value = zero
	r.err = failure
	r.state = errState
	return r
}

func (r *Result[T, E]) setOk(value T) {
	var zero E
	r.value = value
	r.err = zero
	r.state = okState
}

// IfOk calls fn with the success value, or elseFn with the failure value.
// Nil callbacks are skipped. r is returned unchanged.
func (r *Result[T, E]) IfOk(fn func(T), elseFn func(E)) *Result[T, E] {
	r.mustBeConstructed()
	if r.state == okState {
		if fn != nil {
			fn(r.value)
		}
	} else if elseFn != nil {
		elseFn(r.err)
	}
	return r
}

// IfErr calls fn with the failure value, or elseFn with the success value.
// Nil callbacks are skipped. r is returned unchanged.
func (r *Result[T, E]) IfErr(fn func(E), elseFn func(T)) *Result[T, E] {
	r.mustBeConstructed()
	if r.state == errState {
		if fn != nil {
			fn(r.err)
		}
	} else if elseFn != nil {
		elseFn(r.value)
	}
	return r
}

func (r *Result[T, E]) String() string {
	if r == nil || r.state == unset {
		return "Result(<not constructed>)"
	}
	if r.state == okState {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
