package packet

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

type WriteFn[T any] func(io.Writer, T) error
type ReadFn[T any] func(*Buffer) (T, error)

var (
	ErrInvalidBoolean     = errors.New("invalid byte for Boolean field")
	ErrVarIntTooLong      = errors.New("VarInt is too long")
	ErrVarLongTooLong     = errors.New("VarLong is too long")
	ErrNegativeLength     = errors.New("negative length")
	ErrStringTooLong      = errors.New("string exceeds maximum length")
	ErrInvalidUTF8        = errors.New("string is not valid UTF-8")
	ErrArrayTooLong       = errors.New("array length exceeds remaining bytes")
	ErrPositionOutOfRange = errors.New("position component out of range")
	ErrOptVarIntRange     = errors.New("optional VarInt value out of range")
)

// DefaultMaxStringLen is the largest String byte length accepted when a
// Buffer does not set its own limit.
const DefaultMaxStringLen = 32767

func WriteBoolean(w io.Writer, v bool) (err error) {
	b := byte(0)
	if v {
		b = 1
	}
	_, err = w.Write([]byte{b})
	return
}

func ReadBoolean(r *Buffer) (v bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}

	if b == 0 {
		v = false
	} else if b == 1 {
		v = true
	} else {
		err = ErrInvalidBoolean
	}
	return
}

// WriteByte writes a raw octet.
func WriteByte(w io.Writer, v byte) (err error) {
	_, err = w.Write([]byte{v})
	return
}

func ReadByte(r *Buffer) (v byte, err error) {
	return r.ReadByte()
}

// WriteSignedByte writes the protocol's signed Byte type.
func WriteSignedByte(w io.Writer, v int8) error {
	return WriteByte(w, byte(v))
}

func ReadSignedByte(r *Buffer) (v int8, err error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func WriteShort(w io.Writer, v int16) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadShort(r *Buffer) (v int16, err error) {
	u, err := ReadUnsignedShort(r)
	return int16(u), err
}

func WriteUnsignedShort(w io.Writer, v uint16) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadUnsignedShort(r *Buffer) (v uint16, err error) {
	b, err := r.Next(2)
	if err != nil {
		return
	}
	v = binary.BigEndian.Uint16(b)
	return
}

func WriteInt(w io.Writer, v int32) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadInt(r *Buffer) (v int32, err error) {
	b, err := r.Next(4)
	if err != nil {
		return
	}
	v = int32(binary.BigEndian.Uint32(b))
	return
}

func WriteLong(w io.Writer, v int64) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadLong(r *Buffer) (v int64, err error) {
	b, err := r.Next(8)
	if err != nil {
		return
	}
	v = int64(binary.BigEndian.Uint64(b))
	return
}

func WriteFloat(w io.Writer, v float32) (err error) {
	return binary.Write(w, binary.BigEndian, math.Float32bits(v))
}

func ReadFloat(r *Buffer) (v float32, err error) {
	b, err := r.Next(4)
	if err != nil {
		return
	}
	v = math.Float32frombits(binary.BigEndian.Uint32(b))
	return
}

func WriteDouble(w io.Writer, v float64) (err error) {
	return binary.Write(w, binary.BigEndian, math.Float64bits(v))
}

func ReadDouble(r *Buffer) (v float64, err error) {
	b, err := r.Next(8)
	if err != nil {
		return
	}
	v = math.Float64frombits(binary.BigEndian.Uint64(b))
	return
}

// WriteVarInt writes the raw two's-complement bits of v, seven at a time,
// least significant group first. Negative values always take five bytes.
func WriteVarInt(w io.Writer, v int32) error {
	var buf [5]byte
	n := putUvarint(buf[:], uint64(uint32(v)))
	_, err := w.Write(buf[:n])
	return err
}

// ReadVarInt accepts any io.ByteReader so framing code can read lengths
// straight off a stream.
func ReadVarInt(r io.ByteReader) (int32, error) {
	var v int32
	var shift uint
	for n := 0; n < 5; n++ {
		b, err := r.ReadByte()
		if err != nil {
			return v, err
		}

		segment := b & 0x7F
		v |= int32(segment) << shift
		shift += 7

		if (b & 0x80) == 0 {
			return v, nil
		}
	}

	return v, ErrVarIntTooLong
}

func WriteVarLong(w io.Writer, v int64) error {
	var buf [10]byte
	n := putUvarint(buf[:], uint64(v))
	_, err := w.Write(buf[:n])
	return err
}

func ReadVarLong(r io.ByteReader) (int64, error) {
	var v int64
	var shift uint
	for n := 0; n < 10; n++ {
		b, err := r.ReadByte()
		if err != nil {
			return v, err
		}

		v |= int64(b&0x7F) << shift
		shift += 7

		if (b & 0x80) == 0 {
			return v, nil
		}
	}

	return v, ErrVarLongTooLong
}

func putUvarint(buf []byte, uv uint64) int {
	i := 0
	for {
		b := byte(uv & 0x7F)
		uv >>= 7
		if uv != 0 {
			b |= 0x80
		}
		buf[i] = b
		i++
		if uv == 0 {
			return i
		}
	}
}

// VarIntSize reports how many bytes WriteVarInt emits for v.
func VarIntSize(v int32) int {
	uv := uint32(v)
	n := 1
	for uv >= 0x80 {
		uv >>= 7
		n++
	}
	return n
}

// WriteOptVarInt writes an optional VarInt: 0 when absent, v+1 otherwise.
// Present values must lie in [0, math.MaxInt32).
func WriteOptVarInt(w io.Writer, v Optional[int32]) error {
	if !v.Exists {
		return WriteVarInt(w, 0)
	}
	if v.Item < 0 || v.Item == math.MaxInt32 {
		return ErrOptVarIntRange
	}
	return WriteVarInt(w, v.Item+1)
}

func ReadOptVarInt(r *Buffer) (v Optional[int32], err error) {
	raw, err := ReadVarInt(r)
	if err != nil || raw == 0 {
		return
	}
	if raw < 0 {
		err = ErrOptVarIntRange
		return
	}
	v.Exists = true
	v.Item = raw - 1
	return
}

func WriteString(w io.Writer, v string) (err error) {
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}
	_, err = io.WriteString(w, v)
	return
}

// ReadString reads a String limited by r.MaxStringLen.
func ReadString(r *Buffer) (string, error) {
	return ReadStringMax(r, r.maxStringLen())
}

// ReadStringMax reads a String whose declared byte length must not exceed max.
// The length is validated before any bytes are copied.
func ReadStringMax(r *Buffer, max int) (v string, err error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return
	}
	if length < 0 {
		err = ErrNegativeLength
		return
	}
	if int(length) > max {
		err = ErrStringTooLong
		return
	}

	buf, err := r.Next(int(length))
	if err != nil {
		return
	}
	if !utf8.Valid(buf) {
		err = ErrInvalidUTF8
		return
	}
	return string(buf), nil
}

// WriteByteArray writes a VarInt length followed by the raw bytes.
func WriteByteArray(w io.Writer, v []byte) (err error) {
	if err = WriteVarInt(w, int32(len(v))); err != nil {
		return
	}
	_, err = w.Write(v)
	return
}

func ReadByteArray(r *Buffer) (v []byte, err error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return
	}
	if length < 0 {
		err = ErrNegativeLength
		return
	}
	return ReadFixedBytes(r, int(length))
}

// ReadFixedBytes returns a copy of the next n bytes.
func ReadFixedBytes(r *Buffer, n int) ([]byte, error) {
	b, err := r.Next(n)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

// WriteRemainingBytes writes v without a length prefix. Only valid as the
// last field of a packet.
func WriteRemainingBytes(w io.Writer, v []byte) (err error) {
	_, err = w.Write(v)
	return
}

func ReadRemainingBytes(r *Buffer) ([]byte, error) {
	return ReadFixedBytes(r, r.Remaining())
}

const (
	positionXZMin = -1 << 25
	positionXZMax = 1<<25 - 1
	positionYMin  = -1 << 11
	positionYMax  = 1<<11 - 1
)

// Position's serialized form is composed of X, Z which are 26 bits each, and 12 bits of Y.
// Components outside those ranges are rejected by WritePosition.
type Position struct {
	X int32
	Y int16
	Z int32
}

func (p Position) Valid() bool {
	return p.X >= positionXZMin && p.X <= positionXZMax &&
		p.Z >= positionXZMin && p.Z <= positionXZMax &&
		p.Y >= positionYMin && p.Y <= positionYMax
}

func WritePosition(w io.Writer, v Position) (err error) {
	if !v.Valid() {
		return ErrPositionOutOfRange
	}
	packed := (uint64(v.X&0x3FFFFFF) << 38) |
		(uint64(v.Z&0x3FFFFFF) << 12) |
		(uint64(v.Y) & 0xFFF)
	err = binary.Write(w, binary.BigEndian, packed)
	return
}

func ReadPosition(r *Buffer) (v Position, err error) {
	b, err := r.Next(8)
	if err != nil {
		return
	}
	packed := int64(binary.BigEndian.Uint64(b))
	// arithmetic shifts sign-extend each field
	v.X = int32(packed >> 38)
	v.Z = int32(packed << 26 >> 38)
	v.Y = int16(packed << 52 >> 52)
	return
}

func WriteUUID(w io.Writer, v uuid.UUID) (err error) {
	_, err = w.Write(v[:])
	return
}

func ReadUUID(r *Buffer) (v uuid.UUID, err error) {
	b, err := r.Next(16)
	if err != nil {
		return
	}
	copy(v[:], b)
	return
}

func WritePrefixedArray[T any](w io.Writer, v []T, write WriteFn[T]) (err error) {
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}
	for _, item := range v {
		err = write(w, item)
		if err != nil {
			return
		}
	}
	return
}

// ReadPrefixedArray reads a VarInt count followed by that many items.
// Every item takes at least one byte, so counts larger than the remaining
// bytes are rejected before allocating.
func ReadPrefixedArray[T any](r *Buffer, read ReadFn[T]) (v []T, err error) {
	length := int32(0)
	if length, err = ReadVarInt(r); err != nil {
		return
	}
	if length < 0 {
		err = ErrNegativeLength
		return
	}
	if int(length) > r.Remaining() {
		err = ErrArrayTooLong
		return
	}

	v = make([]T, length)
	for i := 0; i < int(length); i++ {
		var item T
		if item, err = read(r); err != nil {
			return
		}
		v[i] = item
	}
	return
}

// Optional[T] represents Optional field in a packet
//
// Serialized Optional[T] is prefixed with Boolean of whether the value exists.
// If so, the value T is followed.
type Optional[T any] struct {
	Exists bool
	Item   T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Exists: true, Item: v}
}

func WriteOptional[T any](w io.Writer, v Optional[T], write WriteFn[T]) (err error) {
	err = WriteBoolean(w, v.Exists)
	if err != nil {
		return
	}
	if v.Exists {
		err = write(w, v.Item)
	}
	return
}

func ReadOptional[T any](r *Buffer, read ReadFn[T]) (v Optional[T], err error) {
	if v.Exists, err = ReadBoolean(r); err != nil {
		return
	}
	if v.Exists {
		v.Item, err = read(r)
	}
	return
}
