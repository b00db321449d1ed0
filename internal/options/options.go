// Package options implements the functional option pattern shared by the
// zdex packages.
//
// An option is a value that mutates a configuration target and may reject
// the mutation with an error. Public packages expose their own option type
// as an alias of Option[*theirConfig] and build options with New or NoError.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a plain function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may fail.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
