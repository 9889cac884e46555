package field

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/mpcith/banquet/utils/buffer"
)

// AppendElement appends the ByteSize little-endian bytes of a to dst.
func (f *Field) AppendElement(dst []byte, a Element) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(a))
	return append(dst, buf[:f.ByteSize()]...)
}

// ElementToBytes returns the ByteSize little-endian bytes of a.
func (f *Field) ElementToBytes(a Element) []byte {
	return f.AppendElement(make([]byte, 0, f.ByteSize()), a)
}

// ElementFromBytes decodes an element from the first ByteSize bytes of b.
// It returns ErrSizeMismatch if b is shorter than ByteSize.
func (f *Field) ElementFromBytes(b []byte) (Element, error) {
	n := f.ByteSize()
	if len(b) < n {
		return Zero, fmt.Errorf("%w: element needs %d bytes, got %d", ErrSizeMismatch, n, len(b))
	}
	return f.decodeElement(b), nil
}

// decodeElement decodes an element from b, which must hold at least
// ByteSize bytes.
func (f *Field) decodeElement(b []byte) Element {
	n := f.ByteSize()
	_ = b[n-1]
	var buf [8]byte
	copy(buf[:], b[:n])
	return Element(binary.LittleEndian.Uint64(buf[:]))
}

// ElementsBinarySize returns the number of bytes written by WriteElements
// for a vector of count elements.
func (f *Field) ElementsBinarySize(count int) int {
	return 8 + count*f.ByteSize()
}

// WriteElements writes the length of v followed by its elements, each on
// ByteSize bytes, to w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations, it
// is preferable to pass a buffer.Writer directly.
func (f *Field) WriteElements(w io.Writer, v []Element) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(v))); err != nil {
			return inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}
		n += inc

		data := make([]byte, 0, len(v)*f.ByteSize())
		for _, a := range v {
			data = f.AppendElement(data, a)
		}

		if inc, err = buffer.WriteUint8Slice(w, data); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint8Slice: %w", err)
		}

		return n + inc, w.Flush()

	default:
		return f.WriteElements(bufio.NewWriter(w), v)
	}
}

// ReadElements reads a vector written by WriteElements from r.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (f *Field) ReadElements(r io.Reader) (v []Element, n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var count uint64
		var inc int64
		if inc, err = buffer.ReadUint64(r, &count); err != nil {
			return nil, inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}
		n += inc

		// Elements are appended one at a time so that a corrupted length
		// cannot trigger a large allocation.
		buf := make([]byte, f.ByteSize())
		for i := uint64(0); i < count; i++ {
			if inc, err = buffer.ReadUint8Slice(r, buf); err != nil {
				return nil, n + inc, fmt.Errorf("buffer.ReadUint8Slice: element %d: %w", i, err)
			}
			n += inc

			v = append(v, f.decodeElement(buf))
		}

		return v, n, nil

	default:
		return f.ReadElements(bufio.NewReader(r))
	}
}

// MarshalElements encodes v on a slice of bytes.
func (f *Field) MarshalElements(v []Element) (p []byte, err error) {
	buf := buffer.NewBufferSize(f.ElementsBinarySize(len(v)))
	if _, err = f.WriteElements(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalElements decodes a vector encoded by MarshalElements.
func (f *Field) UnmarshalElements(p []byte) (v []Element, err error) {
	v, _, err = f.ReadElements(buffer.NewBuffer(p))
	return
}
