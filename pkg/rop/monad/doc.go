// Package monad implements a stateful chain of transformation steps that share
// a running value and an append-only history.
//
// A Step applies one function to an input. It fails when the function returns
// an error or panics, when its condition reports true for the output, or when
// the output is nullish (nil or NaN). A failed Step surfaces its default value
// instead of its output; failures are never returned to the caller.
//
// Key operations on a Pipeline:
// - New: start from a value; history[0] is always an identity step
// - Apply/ReApply: build a fresh Step from a function using the pipeline's condition and default
// - Run/ReRun: execute a given Step (or one from history) against the current value
// - SetCondition/SetDefault/SetLockOnFail: configure future steps and locking
// - GetStep: history access, negative indices wrap from the end
// - Log/Table: render the history
package monad
