// Package buffer implements the little-endian encoding of field element
// vectors on writers and readers that expose their internal buffers.
package buffer

import (
	"fmt"
	"io"
)

// Writer is a writer exposing its internal buffer, so that values can be
// encoded in place. It is implemented by *bufio.Writer and *Buffer.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is a buffered reader. It is implemented by *bufio.Reader and
// *Buffer.
type Reader interface {
	io.Reader
	Size() int
}

// Buffer is a fixed-capacity byte slice satisfying both Writer and Reader.
// Writes that do not fit return io.ErrShortBuffer; the slice never grows.
type Buffer struct {
	buf []byte
	w   int
	r   int
}

// NewBuffer returns a Buffer reading from and writing over p.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{buf: p}
}

// NewBufferSize returns an empty Buffer with room for size bytes.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Write copies p at the write offset. Nothing is written if p does not fit.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > b.Available() {
		return 0, fmt.Errorf("%w: %d bytes available, %d requested", io.ErrShortBuffer, b.Available(), len(p))
	}
	n = copy(b.buf[b.w:], p)
	b.w += n
	return n, nil
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns the unwritten tail of the backing slice with
// length zero, valid until the next Write.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.w:][:0]
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.buf) - b.w
}

// Bytes returns the bytes written so far.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.w]
}

// Read copies bytes from the read offset into p. It returns io.EOF once
// the backing slice is exhausted.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if b.r == len(b.buf) && len(p) > 0 {
		return 0, io.EOF
	}
	n = copy(p, b.buf[b.r:])
	b.r += n
	return n, nil
}

// Size returns the number of bytes left to read.
func (b *Buffer) Size() int {
	return len(b.buf) - b.r
}
