package registry

// Option configures the lookup policy of an EnumMapping or a ClassificationTable.
type Option[T any] interface {
	apply(*policy[T])
}

type policy[T any] struct {
	fallback    T
	hasFallback bool
}

type optFunc[T any] func(*policy[T])

func (f optFunc[T]) apply(p *policy[T]) { f(p) }

// WithFallback resolves every failed lookup to v instead of failing.
//
// The default policy is a hard failure.
func WithFallback[T any](v T) Option[T] {
	return optFunc[T](func(p *policy[T]) {
		p.fallback = v
		p.hasFallback = true
	})
}

func newPolicy[T any](opts []Option[T]) policy[T] {
	var p policy[T]
	for _, opt := range opts {
		opt.apply(&p)
	}

	return p
}
