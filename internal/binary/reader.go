package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a read would run past the end of the blob.
var ErrShortBuffer = errors.New("unexpected end of blob")

// Reader provides bounds-checked little-endian reads over a byte slice
// with position tracking. It never copies the underlying buffer.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new Reader over the given slice.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadU32 reads a little-endian uint32 and advances the position.
func (r *Reader) ReadU32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrShortBuffer
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadBytes returns the next n bytes as a sub-slice of the underlying
// buffer and advances the position.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrShortBuffer
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Slice returns the sub-slice [offset, offset+size) of the underlying
// buffer without moving the position. The arithmetic is done in 64 bits
// so descriptor values near the uint32 limit cannot wrap.
func (r *Reader) Slice(offset, size uint32) ([]byte, error) {
	end := uint64(offset) + uint64(size)
	if end > uint64(len(r.data)) {
		return nil, fmt.Errorf("range [%d, %d) exceeds blob length %d: %w",
			offset, end, len(r.data), ErrShortBuffer)
	}
	return r.data[offset:end], nil
}

// WrapError adds positional context to a read error.
func (r *Reader) WrapError(context string, err error) error {
	return fmt.Errorf("%s at offset %d: %w", context, r.pos, err)
}
