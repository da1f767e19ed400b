package result

// Map applies fn to the success value of r. An Err is passed through as a new
// Err carrying the same failure.
func Map[T, U, E any](r *Result[T, E], fn func(T) U) *Result[U, E] {
	r.mustBeConstructed()
	if r.state == okState {
		return Ok[E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapOr applies fn to the success value of r, or returns Ok(def) when r is Err.
func MapOr[T, U, E any](r *Result[T, E], fn func(T) U, def U) *Result[U, E] {
	r.mustBeConstructed()
	if r.state == okState {
		return Ok[E](fn(r.value))
	}
	return Ok[E](def)
}

func MapOrElse[T, U, E any](r *Result[T, E], fn func(T) U, defFn func() U) *Result[U, E] {
	r.mustBeConstructed()
	if r.state == okState {
		return Ok[E](fn(r.value))
	}
	return Ok[E](defFn())
}

// FlatMap returns fn(value) as is when r is Ok, otherwise a new Err carrying
// the same failure.
func FlatMap[T, U, E any](r *Result[T, E], fn func(T) *Result[U, E]) *Result[U, E] {
	r.mustBeConstructed()
	if r.state == okState {
		return fn(r.value)
	}
	return Err[U](r.err)
}

func FlatMapOr[T, U, E any](r *Result[T, E], fn func(T) *Result[U, E], def *Result[U, E]) *Result[U, E] {
	r.mustBeConstructed()
	if r.state == okState {
		return fn(r.value)
	}
	return def
}

func FlatMapOrElse[T, U, E any](r *Result[T, E], fn func(T) *Result[U, E], defFn func() *Result[U, E]) *Result[U, E] {
	r.mustBeConstructed()
	if r.state == okState {
		return fn(r.value)
	}
	return defFn()
}

// And returns other when r is Ok, otherwise a new Err carrying the failure of r.
func And[T, U, E any](r *Result[T, E], other *Result[U, E]) *Result[U, E] {
	r.mustBeConstructed()
	if r.state == okState {
		return other
	}
	return Err[U](r.err)
}

// AndThen is And with a lazily produced second Result. fn is only called when
// r is Ok.
func AndThen[T, U, E any](r *Result[T, E], fn func(T) *Result[U, E]) *Result[U, E] {
	r.mustBeConstructed()
	if r.state == okState {
		return fn(r.value)
	}
	return Err[U](r.err)
}
