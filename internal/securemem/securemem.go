// Package securemem holds key material in memory that is locked against
// swapping where the OS allows it and zeroed when released.
package securemem

import (
	"runtime"
	"sync"
)

// Buffer is a locked, zero-on-destroy byte buffer.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// New returns a zeroed buffer of size bytes.
func New(size int) *Buffer {
	b := &Buffer{data: make([]byte, size)}
	b.locked = mlock(b.data)
	runtime.SetFinalizer(b, (*Buffer).Destroy)
	return b
}

// From copies src into a new buffer and zeroes src.
func From(src []byte) *Buffer {
	b := New(len(src))
	copy(b.data, src)
	clear(src)
	return b
}

// Bytes returns the buffer contents, or nil once destroyed. The slice must
// not be retained past Destroy.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Destroy zeroes and unlocks the buffer. Safe to call more than once.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}
	clear(b.data)
	if b.locked {
		munlock(b.data)
		b.locked = false
	}
	b.data = nil
	runtime.SetFinalizer(b, nil)
}
