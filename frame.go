package mcnet

import (
	"bytes"
	"errors"
	"io"

	"github.com/gstoney/mcnet/packet"
	"github.com/klauspost/compress/zlib"
)

var (
	ErrInvalidFrameLength  = errors.New("invalid frame length")
	ErrZlibPayloadOverrun  = errors.New("zlib stream exceeds declared payload length")
	ErrZlibPayloadUnderrun = errors.New("zlib stream shorter than declared payload length")
	ErrZlibTrailingData    = errors.New("trailing data in frame after zlib stream ends")
)

// frameReader reads whole length-prefixed frames into a reused buffer.
type frameReader struct {
	src byteReader
	buf []byte
}

// next returns the body of the next frame. The slice is valid until the
// following call. A frame longer than max is not consumed.
func (f *frameReader) next(max int32) ([]byte, error) {
	length, err := packet.ReadVarInt(f.src)
	if err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, ErrInvalidFrameLength
	}
	if length > max {
		return nil, ErrPacketTooBig
	}

	f.buf = grow(f.buf, int(length))
	if _, err := io.ReadFull(f.src, f.buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return f.buf, nil
}

// inflater decompresses frame bodies of exactly the declared length.
type inflater struct {
	src bytes.Reader
	zr  io.ReadCloser
	out []byte
}

func (z *inflater) inflate(compressed []byte, n int) ([]byte, error) {
	z.src.Reset(compressed)

	var err error
	if z.zr == nil {
		z.zr, err = zlib.NewReader(&z.src)
	} else {
		err = z.zr.(zlib.Resetter).Reset(&z.src, nil)
	}
	if err != nil {
		return nil, err
	}

	z.out = grow(z.out, n)
	if _, err := io.ReadFull(z.zr, z.out); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrZlibPayloadUnderrun
		}
		return nil, err
	}

	var extra [1]byte
	if m, err := z.zr.Read(extra[:]); m > 0 || err == nil {
		return nil, ErrZlibPayloadOverrun
	} else if err != io.EOF {
		return nil, err
	}

	if z.src.Len() > 0 {
		return nil, ErrZlibTrailingData
	}
	return z.out, nil
}

func grow(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}
	return b[:n]
}
