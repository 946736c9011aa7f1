// Package chain provides a typed fluent wrapper around monad.Pipeline.
//
// The pipeline itself works on untyped values so that a value may change type
// from one step to the next. Chain[T] tracks the expected type and lifts
// typed functions into pipeline steps. Failed steps still fall back to the
// pipeline's default, so a chain may hold a value of another type; Value
// reports that with its second result.
//
// Key operations:
// - Start/FromValue: begin a chain from a pipeline or value
// - Map: apply a typed function (T -> U) as a step
// - Try: apply a typed function returning (U, error) as a step
// - Ensure: run side effects when the last step passed
// - Finally: collapse the chain into a final value via handlers
package chain
