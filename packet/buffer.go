package packet

import (
	"errors"
	"fmt"
	"io"
)

// ErrBufferUnderrun is returned when a read needs more bytes than remain.
// It matches io.ErrUnexpectedEOF with errors.Is.
var ErrBufferUnderrun = fmt.Errorf("buffer underrun: %w", io.ErrUnexpectedEOF)

var (
	ErrNegativeCount = errors.New("negative byte count")
	ErrUnreadAtStart = errors.New("UnreadByte at start of buffer")
)

// Buffer is a byte slice with a read cursor. Reads consume from the cursor,
// writes append to the end.
//
// A Buffer is owned by a single encode or decode operation and must not be
// shared between goroutines.
type Buffer struct {
	buf []byte
	off int

	// MaxStringLen caps the declared byte length accepted by ReadString.
	// Zero means DefaultMaxStringLen.
	MaxStringLen int
}

func NewBuffer(buf []byte) Buffer {
	return Buffer{
		buf: buf,
		off: 0,
	}
}

// Offset reports how many bytes have been consumed.
func (b Buffer) Offset() int {
	return b.off
}

func (b Buffer) Remaining() int {
	return len(b.buf) - b.off
}

// Bytes returns the unread portion. The slice aliases the buffer.
func (b Buffer) Bytes() []byte {
	return b.buf[b.off:]
}

// Reset empties the buffer and rewinds the cursor, keeping the allocation.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.off = 0
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

func (b *Buffer) ReadByte() (byte, error) {
	if b.off >= len(b.buf) {
		return 0, ErrBufferUnderrun
	}
	c := b.buf[b.off]
	b.off++
	return c, nil
}

// Read lets stream decoders consume the unread portion.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.off >= len(b.buf) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.off:])
	b.off += n
	return n, nil
}

func (b *Buffer) UnreadByte() error {
	if b.off == 0 {
		return ErrUnreadAtStart
	}
	b.off--
	return nil
}

// Next consumes n bytes and returns them without copying.
// The cursor does not move when fewer than n bytes remain.
func (b *Buffer) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n > b.Remaining() {
		return nil, ErrBufferUnderrun
	}
	p := b.buf[b.off : b.off+n]
	b.off += n
	return p, nil
}

func (b Buffer) maxStringLen() int {
	if b.MaxStringLen > 0 {
		return b.MaxStringLen
	}
	return DefaultMaxStringLen
}
