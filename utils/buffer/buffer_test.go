package buffer

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("WriteRead", func(t *testing.T) {
		b := NewBufferSize(8 + 5)

		n, err := WriteUint64(b, 0x0102030405060708)
		require.NoError(t, err)
		require.Equal(t, int64(8), n)

		n, err = WriteUint8Slice(b, []byte{1, 2, 3, 4, 5})
		require.NoError(t, err)
		require.Equal(t, int64(5), n)

		var c uint64
		_, err = ReadUint64(b, &c)
		require.NoError(t, err)
		require.Equal(t, uint64(0x0102030405060708), c)

		out := make([]byte, 5)
		_, err = ReadUint8Slice(b, out)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2, 3, 4, 5}, out)

		require.Equal(t, 0, b.Size())
		_, err = ReadUint8Slice(b, out[:1])
		require.ErrorIs(t, err, io.EOF)

		require.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1, 1, 2, 3, 4, 5}, b.Bytes())
	})

	t.Run("Truncated", func(t *testing.T) {
		b := NewBuffer([]byte{1, 2, 3})
		var c uint64
		_, err := ReadUint64(b, &c)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("Overflow", func(t *testing.T) {
		b := NewBufferSize(4)
		_, err := WriteUint64(b, 1)
		require.Error(t, err)

		n, err := b.Write([]byte{1, 2, 3, 4, 5})
		require.ErrorIs(t, err, io.ErrShortBuffer)
		require.Zero(t, n)
		require.Empty(t, b.Bytes())
		require.Equal(t, 4, b.Available())
	})

	t.Run("Bufio", func(t *testing.T) {
		var sink bytes.Buffer
		w := bufio.NewWriterSize(&sink, 16)

		data := make([]byte, 100)
		for i := range data {
			data[i] = byte(i)
		}

		n, err := WriteUint8Slice(w, data)
		require.NoError(t, err)
		require.Equal(t, int64(len(data)), n)
		require.NoError(t, w.Flush())
		require.Equal(t, data, sink.Bytes())

		r := bufio.NewReaderSize(bytes.NewReader(sink.Bytes()), 16)
		out := make([]byte, 100)
		_, err = ReadUint8Slice(r, out)
		require.NoError(t, err)
		require.Equal(t, data, out)
	})
}
