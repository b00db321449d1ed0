package interleave

import (
	"context"
	"iter"
	"log/slog"
	"slices"

	"github.com/arloliu/zdex/dimension"
	"github.com/arloliu/zdex/internal/pool"
	"github.com/arloliu/zdex/zindex"
)

// Interleave returns the z-order index of dims.
//
// Dimension i of the result is dims[i]; the first dimension is the most
// significant. An empty dims, or dimensions that are all zero-width, yield
// a zero-length index.
//
// Example:
//
//	z, err := interleave.Interleave([]dimension.Dimension{
//	    dimension.Uint(uint8(12)),
//	    dimension.Int(int16(-40)),
//	})
func Interleave(dims []dimension.Dimension, opts ...Option) (*zindex.ZIndex, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return run(cfg, dims)
}

// Slice returns the z-order index of a runtime-length collection of
// same-typed dimensions. It avoids boxing each element into an interface
// slice first.
func Slice[T dimension.Dimension](dims []T, opts ...Option) (*zindex.ZIndex, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return run(cfg, dims)
}

// Seq returns the z-order index of the dimensions yielded by seq, in order.
// seq is consumed once.
func Seq[T dimension.Dimension](seq iter.Seq[T], opts ...Option) (*zindex.ZIndex, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return run(cfg, slices.Collect(seq))
}

// run is the single interleave implementation behind every entry point.
func run[T dimension.Dimension](cfg *Config, dims []T) (*zindex.ZIndex, error) {
	widths, releaseWidths := pool.GetUintSlice(len(dims))
	defer releaseWidths()

	active, releaseActive := pool.GetIntSlice(len(dims))
	defer releaseActive()
	active = active[:0]

	var total, rounds uint
	for d, dim := range dims {
		w, err := dim.Width()
		if err != nil {
			return nil, cfg.fail(&AccessError{Dimension: d, Op: OpWidth, Err: err})
		}

		widths[d] = w
		total += w
		rounds = max(rounds, w)
		if w > 0 {
			active = append(active, d)
		}
	}

	b := zindex.NewBuilder(total)

	// Every active dimension has consumed exactly k bits when round k starts,
	// so k is the shared cursor. Exhausted dimensions are compacted out of
	// active in place.
	for k := uint(0); len(active) > 0; k++ {
		next := active[:0]
		for _, d := range active {
			bit, err := dims[d].BitAt(k)
			if err != nil {
				return nil, cfg.fail(&AccessError{Dimension: d, Op: OpBit, Bit: k, Err: err})
			}

			b.AppendBit(bit)
			if k+1 < widths[d] {
				next = append(next, d)
			}
		}
		active = next
	}

	z := b.Finish()
	cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "z-index built",
		slog.Int("dimensions", len(dims)),
		slog.Uint64("bits", uint64(total)),
		slog.Uint64("rounds", uint64(rounds)),
	)

	return z, nil
}

func (c *Config) fail(err *AccessError) error {
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "z-index aborted",
		slog.Int("dimension", err.Dimension),
		slog.String("op", err.Op),
		slog.Any("error", err.Err),
	)

	return err
}
