package result

import "encoding/json"

// MarshalJSON encodes the success value. For an Err the failure is returned as
// the error, see AsError.
func (r *Result[T, E]) MarshalJSON() ([]byte, error) {
	r.mustBeConstructed()
	if r.state == errState {
		return nil, AsError(r.err)
	}
	return json.Marshal(r.value)
}

// MarshalYAML implements yaml.Marshaler by handing the plain success value to
// the encoder. For an Err the failure is returned as the error.
func (r *Result[T, E]) MarshalYAML() (any, error) {
	r.mustBeConstructed()
	if r.state == errState {
		return nil, AsError(r.err)
	}
	return r.value, nil
}
