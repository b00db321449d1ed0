package interleave

import (
	"github.com/arloliu/zdex/dimension"
	"github.com/arloliu/zdex/zindex"
)

// MaxTupleArity is the largest arity with a TupleN entry point.
const MaxTupleArity = 8

// The TupleN functions accept dimensions of independent concrete types in a
// fixed order. Each one only arranges its arguments and delegates to the
// shared algorithm; argument i becomes dimension i.

// Tuple1 returns the z-order index of a single dimension, which is the
// dimension's own bits in order.
func Tuple1[A dimension.Dimension](a A, opts ...Option) (*zindex.ZIndex, error) {
	return tuple(opts, a)
}

// Tuple2 returns the z-order index of 2 dimensions.
func Tuple2[A, B dimension.Dimension](a A, b B, opts ...Option) (*zindex.ZIndex, error) {
	return tuple(opts, a, b)
}

// Tuple3 returns the z-order index of 3 dimensions.
func Tuple3[A, B, C dimension.Dimension](a A, b B, c C, opts ...Option) (*zindex.ZIndex, error) {
	return tuple(opts, a, b, c)
}

// Tuple4 returns the z-order index of 4 dimensions.
func Tuple4[A, B, C, D dimension.Dimension](a A, b B, c C, d D, opts ...Option) (*zindex.ZIndex, error) {
	return tuple(opts, a, b, c, d)
}

// Tuple5 returns the z-order index of 5 dimensions.
func Tuple5[A, B, C, D, E dimension.Dimension](a A, b B, c C, d D, e E, opts ...Option) (*zindex.ZIndex, error) {
	return tuple(opts, a, b, c, d, e)
}

// Tuple6 returns the z-order index of 6 dimensions.
func Tuple6[A, B, C, D, E, F dimension.Dimension](a A, b B, c C, d D, e E, f F, opts ...Option) (*zindex.ZIndex, error) {
	return tuple(opts, a, b, c, d, e, f)
}

// Tuple7 returns the z-order index of 7 dimensions.
func Tuple7[A, B, C, D, E, F, G dimension.Dimension](a A, b B, c C, d D, e E, f F, g G, opts ...Option) (*zindex.ZIndex, error) {
	return tuple(opts, a, b, c, d, e, f, g)
}

// Tuple8 returns the z-order index of 8 dimensions.
func Tuple8[A, B, C, D, E, F, G, H dimension.Dimension](a A, b B, c C, d D, e E, f F, g G, h H, opts ...Option) (*zindex.ZIndex, error) {
	return tuple(opts, a, b, c, d, e, f, g, h)
}

func tuple(opts []Option, dims ...dimension.Dimension) (*zindex.ZIndex, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return run(cfg, dims)
}
