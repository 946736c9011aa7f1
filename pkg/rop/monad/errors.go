package monad

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnexpectedType  = errors.New("unexpected value type")
	ErrConditionMet    = errors.New("failure condition met")
	ErrNullishOutput   = errors.New("nullish output")
	ErrNotRun          = errors.New("step has not run")
)

// PanicError records a panic raised by a transform or a condition.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("step panicked: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
