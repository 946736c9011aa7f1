package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the carried value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if the attempt failed
	Err() error
	// IsSuccess returns true if the attempt passed
	IsSuccess() bool
}

// WithFallback extends WithError with the fallback accessor
type WithFallback[T any] interface {
	WithError[T]
	// OrElse returns the carried value or def
	OrElse(def T) T
}

var _ WithFallback[any] = Result[any]{}
