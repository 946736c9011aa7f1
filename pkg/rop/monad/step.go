package monad

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ib-77/stepkit/pkg/rop"
)

// Func transforms one value into another.
type Func func(any) (any, error)

// Condition reports true when an output must be treated as a failure.
type Condition func(any) bool

// Identity returns its input unchanged.
func Identity(v any) (any, error) {
	return v, nil
}

// Never is the condition that never fails.
func Never(any) bool {
	return false
}

// Lift adapts a typed function to a Func. An input that is not a T fails the step
// with ErrUnexpectedType.
func Lift[T, U any](f func(T) U) Func {
	return LiftTry(func(t T) (U, error) {
		return f(t), nil
	})
}

// LiftTry adapts a typed function returning an error to a Func.
func LiftTry[T, U any](f func(T) (U, error)) Func {
	return func(v any) (any, error) {
		t, ok := v.(T)
		if !ok {
			return nil, errors.Wrapf(ErrUnexpectedType, "want %v, got %T", reflect.TypeFor[T](), v)
		}
		return f(t)
	}
}

// Step is one transformation attempt.
type Step struct {
	id           uuid.UUID
	createdAt    time.Time
	transform    Func
	condition    Condition
	defaultValue any

	input  any
	output any
	err    error
	failed bool
	runs   int
}

// NewStep creates a Step. A nil condition never fails. A nullish defaultValue
// is resolved to the input on the first Run.
func NewStep(transform Func, condition Condition, defaultValue any) *Step {
	if condition == nil {
		condition = Never
	}
	return &Step{
		id:           uuid.New(),
		createdAt:    time.Now().UTC(),
		transform:    transform,
		condition:    condition,
		defaultValue: defaultValue,
	}
}

// Run applies the transform to input and records the outcome. It may be called
// repeatedly; a default resolved by an earlier run is kept.
func (s *Step) Run(input any) *Step {
	s.input = input
	s.defaultValue = rop.Coalesce(s.defaultValue, input)
	s.runs++
	s.output, s.err = s.attempt(input)
	s.failed = s.err != nil
	return s
}

// attempt returns the output and the failure cause, nil when the step passed.
func (s *Step) attempt(input any) (output any, cause error) {
	defer func() {
		if r := recover(); r != nil {
			pe := &PanicError{Value: r}
			output, cause = pe, pe
		}
	}()

	out, err := s.transform(input)
	if err != nil {
		return err, err
	}
	// nullish first so conditions never see nil or NaN
	if rop.IsNullish(out) {
		return out, ErrNullishOutput
	}
	if s.condition(out) {
		return out, ErrConditionMet
	}
	return out, nil
}

// Value is the default value when the step failed, the output otherwise.
func (s *Step) Value() any {
	if s.failed {
		return s.defaultValue
	}
	return s.output
}

// Result reports the last run as a rop.Result. A failure carries the default as
// fallback; a step that never ran fails with ErrNotRun.
func (s *Step) Result() rop.Result[any] {
	if s.runs == 0 {
		return rop.Fail[any](errors.Wrapf(ErrNotRun, "step %s", s.id))
	}
	if s.failed {
		return rop.Fallback(s.defaultValue, s.err)
	}
	return rop.Success(s.output)
}

func (s *Step) ID() uuid.UUID {
	return s.id
}

func (s *Step) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Step) Input() any {
	return s.input
}

// Output is the transform's result, or the error it returned or panicked with.
func (s *Step) Output() any {
	return s.output
}

// Err is the failure cause of the last run, nil when it passed.
func (s *Step) Err() error {
	return s.err
}

func (s *Step) Failed() bool {
	return s.failed
}

func (s *Step) DefaultValue() any {
	return s.defaultValue
}

func (s *Step) Transform() Func {
	return s.transform
}

func (s *Step) Condition() Condition {
	return s.condition
}

// Runs counts how many times the step has been executed.
func (s *Step) Runs() int {
	return s.runs
}
