package monad

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/ib-77/stepkit/pkg/rop/mathx"
)

// Pipeline runs Steps against a running value and keeps every executed Step,
// in execution order, in its history.
type Pipeline struct {
	value        any
	history      []*Step
	condition    Condition
	defaultValue any
	lockOnFail   bool
	locked       bool
	logger       *log.Logger
}

// New starts a pipeline from initial. The first history entry is an identity
// step recording initial; opts are applied after it.
func New(initial any, opts ...Option) *Pipeline {
	p := &Pipeline{value: initial}
	p.SetCondition(nil).SetDefault(nil).SetLockOnFail(false)
	p.Apply(Identity)

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetStep returns the history entry at index. Indices above the last entry are
// rejected; negative indices wrap from the end (-1 is the last entry).
func (p *Pipeline) GetStep(index int) (*Step, error) {
	last := len(p.history) - 1
	if index > last {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, last %d", index, last)
	}

	i, err := mathx.Overflow(index, 0, last)
	if err != nil {
		return nil, err
	}
	return p.history[i], nil
}

// LastStep returns the most recent history entry.
func (p *Pipeline) LastStep() *Step {
	return p.history[len(p.history)-1]
}

// Run executes step against the current value and appends it to the history.
// A locked pipeline ignores the call.
func (p *Pipeline) Run(step *Step) *Pipeline {
	if p.locked {
		p.debug("run skipped, pipeline locked", "step", step.ID())
		return p
	}

	step.Run(p.value)
	p.value = step.Value()
	p.locked = p.lockOnFail && step.Failed()
	p.history = append(p.history, step)

	p.debug("step run", "step", step.ID(), "index", len(p.history)-1,
		"failed", step.Failed(), "locked", p.locked)
	return p
}

// ReRun executes the history entry at index again. The same Step is appended
// once more; older entries are kept.
func (p *Pipeline) ReRun(index int) (*Pipeline, error) {
	step, err := p.GetStep(index)
	if err != nil {
		return p, errors.Wrap(err, "rerun")
	}
	return p.Run(step), nil
}

func (p *Pipeline) ReRunLast() *Pipeline {
	return p.Run(p.LastStep())
}

// Apply runs a fresh Step built from f and the pipeline's current condition and default.
func (p *Pipeline) Apply(f Func) *Pipeline {
	return p.Run(NewStep(f, p.condition, p.defaultValue))
}

// ReApply applies the transform of the history entry at index under the
// pipeline's current condition and default.
func (p *Pipeline) ReApply(index int) (*Pipeline, error) {
	step, err := p.GetStep(index)
	if err != nil {
		return p, errors.Wrap(err, "reapply")
	}
	return p.Apply(step.Transform()), nil
}

func (p *Pipeline) ReApplyLast() *Pipeline {
	return p.Apply(p.LastStep().Transform())
}

// SetCondition sets the condition used by future Apply calls. nil means Never.
func (p *Pipeline) SetCondition(c Condition) *Pipeline {
	if c == nil {
		c = Never
	}
	p.condition = c
	return p
}

// SetDefault sets the default used by future Apply calls. nil means none.
func (p *Pipeline) SetDefault(v any) *Pipeline {
	p.defaultValue = v
	return p
}

// SetLockOnFail sets whether a failing step locks the pipeline. Turning it off
// also unlocks; turning it on does not lock by itself.
func (p *Pipeline) SetLockOnFail(lockOnFail bool) *Pipeline {
	p.lockOnFail = lockOnFail
	p.locked = p.locked && lockOnFail
	return p
}

func (p *Pipeline) Value() any {
	return p.value
}

// History returns a copy of the history slice. The Steps are shared.
func (p *Pipeline) History() []*Step {
	return slices.Clone(p.history)
}

func (p *Pipeline) Len() int {
	return len(p.history)
}

func (p *Pipeline) Locked() bool {
	return p.locked
}

func (p *Pipeline) LockOnFail() bool {
	return p.lockOnFail
}

func (p *Pipeline) Condition() Condition {
	return p.condition
}

func (p *Pipeline) DefaultValue() any {
	return p.defaultValue
}

func (p *Pipeline) debug(msg string, keyvals ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, keyvals...)
	}
}
