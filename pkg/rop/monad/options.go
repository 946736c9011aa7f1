package monad

import "github.com/charmbracelet/log"

// Option configures a Pipeline right after its identity step.
type Option func(p *Pipeline)

func WithCondition(c Condition) Option {
	return func(p *Pipeline) {
		p.SetCondition(c)
	}
}

func WithDefault(v any) Option {
	return func(p *Pipeline) {
		p.SetDefault(v)
	}
}

func WithLockOnFail(lockOnFail bool) Option {
	return func(p *Pipeline) {
		p.SetLockOnFail(lockOnFail)
	}
}

// WithLogger enables debug records for every Run.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}
