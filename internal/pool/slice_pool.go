package pool

import "sync"

// Slice pools for the per-dimension scratch state of an interleave call.
// An interleave needs O(D) state for D dimensions; pooling keeps repeated
// calls from allocating it every time.
var (
	uintSlicePool = sync.Pool{
		New: func() any { return &[]uint{} },
	}
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
)

// GetUintSlice retrieves a uint slice of exactly size elements from the pool.
//
// The contents of the returned slice are unspecified; callers overwrite
// every element before reading it. The caller must call the returned
// cleanup function (typically with defer) once the slice is no longer used.
//
// Example:
//
//	widths, cleanup := pool.GetUintSlice(len(dims))
//	defer cleanup()
func GetUintSlice(size int) ([]uint, func()) {
	ptr, _ := uintSlicePool.Get().(*[]uint)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { uintSlicePool.Put(ptr) }
}

// GetIntSlice retrieves an int slice of exactly size elements from the pool.
// See GetUintSlice for the ownership rules.
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}
