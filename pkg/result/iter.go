package result

import "iter"

// All returns a single-pass sequence yielding the success value once, or
// nothing for an Err. The state is captured when All is called; ranging the
// same sequence again yields nothing.
func (r *Result[T, E]) All() iter.Seq[T] {
	it := r.Iter()
	return func(yield func(T) bool) {
		if v, ok := it.Next(); ok {
			yield(v)
		}
	}
}

// Iterator is a single-pass iterator over the success value of a Result.
type Iterator[T any] struct {
	value T
	left  bool
}

// Iter returns a new Iterator over the current success value of r.
func (r *Result[T, E]) Iter() *Iterator[T] {
	r.mustBeConstructed()
	return &Iterator[T]{value: r.value, left: r.state == okState}
}

// Next returns the success value and true on the first call for an Ok, and
// the zero value and false afterwards.
func (it *Iterator[T]) Next() (T, bool) {
	if !it.left {
		var zero T
		return zero, false
	}
	value := it.value
	var zero T
	it.value = zero
	it.left = false
	return value, true
}
