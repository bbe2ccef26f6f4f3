package util

import (
	"bytes"
	"sync"
)

const (
	initBufSize = 64
	// a terminal that received a huge chunk must not pin its buffer in the pool
	maxPooledBufSize = 64 * 1024
)

var (
	bufPool = sync.Pool{
		New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 0, initBufSize))
		},
	}
)

// AcquireBuf returns an empty output buffer
func AcquireBuf() *bytes.Buffer {
	return bufPool.Get().(*bytes.Buffer)
}

// ReleaseBuf returns the buffer to the pool, oversized buffers are dropped
func ReleaseBuf(value *bytes.Buffer) {
	if value.Cap() > maxPooledBufSize {
		return
	}

	value.Reset()
	bufPool.Put(value)
}
