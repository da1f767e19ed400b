package result

import (
	"errors"
	"fmt"
)

// ErrNotConstructed is the panic value raised when a Result that did not come
// from Ok or Err is used.
var ErrNotConstructed = errors.New("result: results can only be created with the Ok or Err functions")

// FailureError carries a failure value that is not itself an error through
// APIs that report an error, such as MarshalJSON.
type FailureError[E any] struct {
	Value E
}

func (e *FailureError[E]) Error() string {
	return fmt.Sprintf("result: failure: %v", e.Value)
}

// AsError returns failure as an error: unchanged when it already is one,
// wrapped in a *FailureError otherwise.
func AsError[E any](failure E) error {
	if err, ok := any(failure).(error); ok && err != nil {
		return err
	}
	return &FailureError[E]{Value: failure}
}
