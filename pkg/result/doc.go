// Package result provides Result[T, E], a container holding either a success
// value of type T or a failure value of type E.
//
// Results are created only with Ok and Err. Using a nil *Result or a zero
// Result literal panics with ErrNotConstructed.
//
// Surface:
// - Ok/Err: construct a Result
// - IsOk/IsErr: inspect the state
// - Expect/Unwrap/UnwrapOr/UnwrapOrElse: extract the success value
// - Map/MapOr/MapOrElse, FlatMap/FlatMapOr/FlatMapOrElse: transform the success value
// - And/AndThen, Or/OrElse: short-circuit composition
// - OkOrInsert/OkOrInsertWith/Replace/ReplaceErr: repair a Result in place
// - IfOk/IfErr: side effects without changing the Result
// - All/Iter: iterate over zero or one success value
// - MarshalJSON/MarshalYAML: encode the success value
//
// Type-changing operations are free functions because methods cannot declare
// their own type parameters. Operations that keep T are methods.
//
// A Result is not safe for concurrent mutation.
package result
