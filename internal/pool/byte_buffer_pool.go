package pool

import "sync"

// Key buffer sizing. A 64-dimension index of 64-bit values is 512 bytes,
// so the default covers typical keys without growing.
const (
	KeyBufferDefaultSize  = 512
	KeyBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a reusable byte slice holder.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers that grew beyond maxThreshold are dropped on Put instead of being
// retained, so one oversized key does not pin memory for the process lifetime.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start with defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var keyDefaultPool = NewByteBufferPool(KeyBufferDefaultSize, KeyBufferMaxThreshold)

// GetKeyBuffer retrieves a ByteBuffer from the default key pool.
func GetKeyBuffer() *ByteBuffer {
	return keyDefaultPool.Get()
}

// PutKeyBuffer returns a ByteBuffer to the default key pool.
func PutKeyBuffer(bb *ByteBuffer) {
	keyDefaultPool.Put(bb)
}
