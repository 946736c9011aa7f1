package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a single transformation attempt. A failed Result
// may still carry a value: the fallback that was surfaced instead of the output.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		hasResult: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		hasResult: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fallback is a failure that still surfaces a value.
func Fallback[T any](r T, err error) Result[T] {
	return Result[T]{
		result:    r,
		err:       err,
		isSuccess: false,
		hasResult: !IsNullish(r),
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// OrElse returns the carried value when there is one, def otherwise.
func (r Result[T]) OrElse(def T) T {
	if r.hasResult {
		return r.result
	}
	return def
}
