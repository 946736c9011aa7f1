package chain

import (
	"github.com/ib-77/stepkit/pkg/rop/monad"
)

// Chain wraps a monad.Pipeline whose current value is expected to be a T
type Chain[T any] struct {
	p *monad.Pipeline
}

// Start creates a new chain over an existing pipeline
func Start[T any](p *monad.Pipeline) Chain[T] {
	return Chain[T]{p: p}
}

// FromValue creates a new pipeline from value and wraps it
func FromValue[T any](value T, opts ...monad.Option) Chain[T] {
	return Start[T](monad.New(value, opts...))
}

// Pipeline returns the underlying pipeline
func (c Chain[T]) Pipeline() *monad.Pipeline {
	return c.p
}

// Value returns the current value and whether it is a T
func (c Chain[T]) Value() (T, bool) {
	v, ok := c.p.Value().(T)
	return v, ok
}

// Passed reports whether the last executed step passed
func (c Chain[T]) Passed() bool {
	return !c.p.LastStep().Failed()
}

// Map applies a pure transformation as a new step
func Map[T, U any](c Chain[T], onValue func(T) U) Chain[U] {
	c.p.Apply(monad.Lift(onValue))
	return Chain[U]{p: c.p}
}

// Try applies a function that returns (U, error) as a new step
func Try[T, U any](c Chain[T], tryOnValue func(T) (U, error)) Chain[U] {
	c.p.Apply(monad.LiftTry(tryOnValue))
	return Chain[U]{p: c.p}
}

// Ensure performs a side effect when the last step passed and the value is a T
func (c Chain[T]) Ensure(onValue func(T)) Chain[T] {
	if v, ok := c.Value(); ok && c.Passed() {
		onValue(v)
	}
	return c
}

// Finally collapses the chain into a final value
func Finally[T, U any](c Chain[T], onValue func(T) U, onOther func(any) U) U {
	if v, ok := c.Value(); ok {
		return onValue(v)
	}
	return onOther(c.p.Value())
}
