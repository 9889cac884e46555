package buffer

import (
	"encoding/binary"
	"fmt"
)

// WriteUint64 writes an uint64 c to w in little-endian order.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]
	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteUint8Slice writes a slice of bytes c to w, flushing w
// each time its internal buffer is full.
func WriteUint8Slice(w Writer, c []uint8) (n int64, err error) {

	for len(c) > 0 {

		available := w.Available()

		if available == 0 {

			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available(); available == 0 {
				return n, fmt.Errorf("cannot WriteUint8Slice: available buffer is zero even after flush")
			}
		}

		chunk := min(available, len(c))

		buf := w.AvailableBuffer()[:chunk]
		copy(buf, c[:chunk])

		var inc int
		if inc, err = w.Write(buf); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		c = c[chunk:]
	}

	return
}
