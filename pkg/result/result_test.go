package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestOk_State(t *testing.T) {
	t.Parallel()

	r := Ok[error](1)
	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())

	v, ok := r.Ok()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, isErr := r.Err()
	assert.False(t, isErr)
}

func TestErr_State(t *testing.T) {
	t.Parallel()

	r := Err[int](errTest)
	assert.True(t, r.IsErr())
	assert.False(t, r.IsOk())

	e, ok := r.Err()
	assert.True(t, ok)
	assert.Same(t, errTest, e)

	v, isOk := r.Ok()
	assert.False(t, isOk)
	assert.Zero(t, v)
}

func TestOk_NilValueIsStillOk(t *testing.T) {
	t.Parallel()

	r := Ok[error, *int](nil)
	assert.True(t, r.IsOk())
	assert.Nil(t, r.Unwrap())
}

func TestErr_NonErrorFailureType(t *testing.T) {
	t.Parallel()

	r := Err[int]("bad input")
	assert.True(t, r.IsErr())
	assert.Equal(t, "Err(bad input)", r.String())
}

func TestGet(t *testing.T) {
	t.Parallel()

	v, e := Ok[error]("x").Get()
	assert.Equal(t, "x", v)
	assert.NoError(t, e)

	v, e = Err[string](errTest).Get()
	assert.Empty(t, v)
	assert.ErrorIs(t, e, errTest)
}

func TestUnwrap_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Ok[error](1).Unwrap())
	assert.Equal(t, 1, Ok[error](1).Expect())
}

func TestUnwrap_PanicsWithFailure(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, errTest.Error(), func() {
		Err[int](errTest).Unwrap()
	})

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		assert.Same(t, errTest, rec)
	}()
	Err[int](errTest).Expect()
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Ok[error](2).UnwrapOr(1))
	assert.Equal(t, 1, Err[int](errTest).UnwrapOr(1))
}

func TestUnwrapOrElse_LazyDefault(t *testing.T) {
	t.Parallel()

	called := false
	def := func() int {
		called = true
		return 1
	}

	assert.Equal(t, 2, Ok[error](2).UnwrapOrElse(def))
	assert.False(t, called, "default should not run for Ok")

	assert.Equal(t, 1, Err[int](errTest).UnwrapOrElse(def))
	assert.True(t, called)
}

func TestOr(t *testing.T) {
	t.Parallel()

	a := Ok[error](1)
	assert.Same(t, a, a.Or(Ok[error](2)))

	b := Ok[error](1)
	assert.Same(t, b, Err[int](errTest).Or(b))
	assert.Equal(t, Ok[error](1), Err[int](errTest).Or(Ok[error](1)))
}

func TestOrElse_ShortCircuitOnSuccess(t *testing.T) {
	t.Parallel()

	called := false
	alt := func() *Result[int, error] {
		called = true
		return Ok[error](2)
	}

	a := Ok[error](1)
	assert.Same(t, a, a.OrElse(alt))
	assert.False(t, called)

	assert.Equal(t, Ok[error](2), Err[int](errTest).OrElse(alt))
	assert.True(t, called)
}

func TestOkOrInsert(t *testing.T) {
	t.Parallel()

	a := Ok[error](2)
	assert.Same(t, a, a.OkOrInsert(1))
	assert.Equal(t, Ok[error](2), a)

	b := Err[int](errTest)
	assert.Same(t, b, b.OkOrInsert(1))
	assert.Equal(t, Ok[error](1), b)
}

func TestOkOrInsertWith_LazyValue(t *testing.T) {
	t.Parallel()

	calls := 0
	fn := func() int {
		calls++
		return 1
	}

	assert.Equal(t, Ok[error](2), Ok[error](2).OkOrInsertWith(fn))
	assert.Equal(t, 0, calls)

	assert.Equal(t, Ok[error](1), Err[int](errTest).OkOrInsertWith(fn))
	assert.Equal(t, 1, calls)
}

func TestReplace_Unconditional(t *testing.T) {
	t.Parallel()

	a := Ok[error](0)
	assert.Same(t, a, a.Replace(1))
	assert.Equal(t, Ok[error](1), a)

	b := Err[int](errTest)
	assert.Same(t, b, b.Replace(1))
	assert.Equal(t, Ok[error](1), b)
}

func TestReplaceErr_Unconditional(t *testing.T) {
	t.Parallel()

	other := errors.New("other")

	a := Ok[error](1)
	assert.Same(t, a, a.ReplaceErr(other))
	assert.Equal(t, Err[int](other), a)

	b := Err[int](errTest)
	b.ReplaceErr(other)
	assert.Equal(t, Err[int](other), b)
}

func TestMutation_VisibleThroughSharedPointer(t *testing.T) {
	t.Parallel()

	r := Err[int](errTest)
	shared := r

	r.OkOrInsert(5)
	assert.True(t, shared.IsOk())
	assert.Equal(t, 5, shared.Unwrap())
}

func TestIfOk_SideEffects(t *testing.T) {
	t.Parallel()

	got := 0
	r := Ok[error](1)
	assert.Same(t, r, r.IfOk(func(v int) { got = v }, nil))
	assert.Equal(t, 1, got)

	elseCalled := false
	e := Err[int](errTest)
	out := e.IfOk(func(int) { t.Fatal("fn should not run for Err") }, func(err error) {
		elseCalled = true
		assert.ErrorIs(t, err, errTest)
	})
	assert.Same(t, e, out)
	assert.True(t, elseCalled)

	// nil callbacks should be safe
	assert.Equal(t, Ok[error](1), Ok[error](1).IfOk(nil, nil))
	assert.Equal(t, Err[int](errTest), Err[int](errTest).IfOk(nil, nil))
}

func TestIfErr_SideEffects(t *testing.T) {
	t.Parallel()

	called := false
	e := Err[int](errTest)
	assert.Same(t, e, e.IfErr(func(err error) { called = true }, nil))
	assert.True(t, called)

	got := 0
	r := Ok[error](1)
	assert.Same(t, r, r.IfErr(func(error) { t.Fatal("fn should not run for Ok") }, func(v int) { got = v }))
	assert.Equal(t, 1, got)

	assert.Equal(t, Ok[error](1), Ok[error](1).IfErr(nil, nil))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ok(1)", Ok[error](1).String())
	assert.Equal(t, "Err(test error)", Err[int](errTest).String())

	var r *Result[int, error]
	assert.Equal(t, "Result(<not constructed>)", r.String())
}

func TestNotConstructed_Panics(t *testing.T) {
	t.Parallel()

	var zero Result[int, error]
	var nilPtr *Result[int, error]
	literal := &Result[int, error]{}

	for name, r := range map[string]*Result[int, error]{
		"zero value":    &zero,
		"nil pointer":   nilPtr,
		"empty literal": literal,
	} {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithError(t, ErrNotConstructed.Error(), func() { r.IsOk() })
			assert.PanicsWithError(t, ErrNotConstructed.Error(), func() { r.IsErr() })
			assert.PanicsWithError(t, ErrNotConstructed.Error(), func() { r.UnwrapOr(1) })
			assert.PanicsWithError(t, ErrNotConstructed.Error(), func() { r.Replace(1) })
			assert.PanicsWithError(t, ErrNotConstructed.Error(), func() { Map(r, func(v int) int { return v }) })
			assert.PanicsWithError(t, ErrNotConstructed.Error(), func() { r.All() })
		})
	}

	assert.Contains(t, ErrNotConstructed.Error(), "Ok or Err")
}
