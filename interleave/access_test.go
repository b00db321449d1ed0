package interleave

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/zdex/dimension"
)

var errUnavailable = errors.New("source unavailable")

func flakyBits(width uint, failAt uint) dimension.Func {
	return dimension.Func{
		WidthFn: func() (uint, error) { return width, nil },
		BitFn: func(i uint) (bool, error) {
			if i == failAt {
				return false, errUnavailable
			}

			return i%2 == 0, nil
		},
	}
}

func TestInterleave_WidthFailure(t *testing.T) {
	broken := dimension.Func{
		WidthFn: func() (uint, error) { return 0, errUnavailable },
		BitFn:   func(uint) (bool, error) { return false, nil },
	}

	z, err := Interleave([]dimension.Dimension{dimension.Uint(uint8(1)), broken})
	require.Nil(t, z)
	require.ErrorIs(t, err, ErrAccess)
	require.ErrorIs(t, err, errUnavailable)

	var accessErr *AccessError
	require.ErrorAs(t, err, &accessErr)
	require.Equal(t, 1, accessErr.Dimension)
	require.Equal(t, OpWidth, accessErr.Op)
	require.Equal(t, "interleave: dimension 1: read width: source unavailable", err.Error())
}

func TestInterleave_BitFailure(t *testing.T) {
	z, err := Tuple3(dimension.Uint(uint8(0xff)), dimension.Uint(uint16(0)), flakyBits(6, 4))
	require.Nil(t, z)
	require.ErrorIs(t, err, ErrAccess)
	require.ErrorIs(t, err, errUnavailable)

	var accessErr *AccessError
	require.ErrorAs(t, err, &accessErr)
	require.Equal(t, 2, accessErr.Dimension)
	require.Equal(t, OpBit, accessErr.Op)
	require.Equal(t, uint(4), accessErr.Bit)
	require.Equal(t, "interleave: dimension 2: read bit 4: source unavailable", err.Error())
}

func TestInterleave_FailureAfterOtherDimensionsExhausted(t *testing.T) {
	// Dimension 0 is exhausted long before dimension 1 fails in a late round.
	_, err := Slice([]dimension.Dimension{dimension.Uint(uint8(1)), flakyBits(100, 99)})

	var accessErr *AccessError
	require.ErrorAs(t, err, &accessErr)
	require.Equal(t, 1, accessErr.Dimension)
	require.Equal(t, uint(99), accessErr.Bit)
}

func TestInterleave_NilFuncIsAccessFailure(t *testing.T) {
	_, err := Tuple1(dimension.Func{})
	require.ErrorIs(t, err, ErrAccess)
	require.ErrorIs(t, err, dimension.ErrNotReadable)
}

func TestInterleave_ExhaustedDimensionIsNotRead(t *testing.T) {
	reads := map[uint]int{}
	counting := dimension.Func{
		WidthFn: func() (uint, error) { return 3, nil },
		BitFn: func(i uint) (bool, error) {
			reads[i]++
			if i >= 3 {
				return false, dimension.ErrBitOutOfRange
			}

			return true, nil
		},
	}

	z, err := Tuple2(counting, dimension.Uint(uint16(0)))
	require.NoError(t, err)
	require.Equal(t, uint(19), z.Len())
	require.Equal(t, map[uint]int{0: 1, 1: 1, 2: 1}, reads)
	require.Equal(t, "1010100000000000000", z.String())
}

func TestAccessError_IsOnlyAccess(t *testing.T) {
	err := &AccessError{Dimension: 0, Op: OpBit, Err: errUnavailable}
	require.True(t, errors.Is(err, ErrAccess))
	require.False(t, errors.Is(err, dimension.ErrBitOutOfRange))
	require.Equal(t, errUnavailable, errors.Unwrap(err))
}
