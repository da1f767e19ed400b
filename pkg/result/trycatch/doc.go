// Package trycatch converts error-returning, panicking and asynchronous
// computations into result.Result values.
//
// Synchronous:
// - TryCatch: call func() (T, error); an error or a panic becomes Err
// - Catch: call func() T that fails only by panicking
// - From: wrap an existing (T, error) pair
//
// Asynchronous:
// - TryCatchAsync: run func(ctx) (T, error) on a goroutine, get a Future
// - FromAwaitable/FromChan: settle an operation that is already in flight
// - Future.Wait/Future.Await: obtain the Result; settlement never fails
// - Settle/TryAll: await or run many computations, keeping input order
//
// Observation of asynchronous computations (metrics, spans, settle events) is
// enabled by attaching an Observer to the context with WithObserver.
//
// Panics raised by misuse of the result package are never captured.
package trycatch
