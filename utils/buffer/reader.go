package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadUint64 reads an uint64 from r in little-endian order and stores the result into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadUint8Slice reads exactly len(c) bytes from r into c.
func ReadUint8Slice(r Reader, c []uint8) (n int64, err error) {
	nint, err := io.ReadFull(r, c)
	return int64(nint), err
}
