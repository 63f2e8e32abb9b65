package packet

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/google/uuid"
)

type TestCase[T any] struct {
	desc      string
	expectErr error
	v         T
	ser       []byte
}

var varintTc = []TestCase[int32]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "One",
		v:    1,
		ser:  []byte{0x01},
	},
	{
		desc: "Two",
		v:    2,
		ser:  []byte{0x02},
	},
	{
		desc: "Max single byte (127)",
		v:    127,
		ser:  []byte{0x7f},
	},
	{
		desc: "Min two bytes (128)",
		v:    128,
		ser:  []byte{0x80, 0x01},
	},
	{
		desc: "Max two bytes (255)", // The largest value that fits in the first 14 bits (0x3FFF) is 16383, but 255 is a standard boundary test.
		v:    255,
		ser:  []byte{0xff, 0x01},
	},
	{
		desc: "Small three bytes (25565)",
		v:    25565,
		ser:  []byte{0xdd, 0xc7, 0x01},
	},
	{
		desc: "Max three bytes (2097151)",
		v:    2097151,
		ser:  []byte{0xff, 0xff, 0x7f},
	},
	{
		desc: "Max positive int32 (2147483647)",
		v:    2147483647,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Negative one (-1)",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
	},
	{
		desc: "Min negative int32 (-2147483648)",
		v:    -2147483648,
		ser:  []byte{0x80, 0x80, 0x80, 0x80, 0x08},
	},
	{
		desc:      "VarInt too long",
		expectErr: ErrVarIntTooLong,
		v:         2147483647,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc:      "Unexpected EOF",
		expectErr: io.ErrUnexpectedEOF,
		v:         2147483647,
		ser:       []byte{0xff, 0xff, 0xff, 0xff},
	},
}

func TestWriteVarInt(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0, 5))
	for _, tC := range varintTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteVarInt(buf, tC.v)
			if err != nil {
				t.Fatalf("WriteVarInt failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteVarInt expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadVarInt(t *testing.T) {
	for _, tC := range varintTc {
		t.Run(tC.desc, func(t *testing.T) {
			// Create a buffer initialized with the serialized bytes (tC.ser)
			r := NewBuffer(tC.ser)

			// Assume ReadVarInt reads from the io.Reader and returns the decoded int32 and an error
			got, err := ReadVarInt(&r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadVarInt expected error %v, but succeeded and returned value %d", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadVarInt expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadVarInt failed: %v", err)
			}

			if got != tC.v {
				t.Errorf("ReadVarInt expected %d, got %d", tC.v, got)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var stringTc = []TestCase[string]{
	{
		desc: "Empty string",
		v:    "",
		ser:  []byte{0x00}, // Length 0, encoded as 0x00
	},
	{
		desc: "ASCII string",
		v:    "Hello",
		ser:  []byte{0x05, 0x48, 0x65, 0x6c, 0x6c, 0x6f}, // Length 5 (0x05) + ASCII bytes
	},
	{
		desc: "Unicode string",
		// The emoji is 4 bytes in UTF-8. Total length: 3 + 4 = 7 bytes
		v:   "Go 🎉",
		ser: []byte{0x07, 0x47, 0x6f, 0x20, 0xf0, 0x9f, 0x8e, 0x89},
	},
	{
		desc: "Multi byte length (128 bytes)",
		v:    string(bytes.Repeat([]byte{'a'}, 128)),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{'a'}, 128)...),
	},
	{
		desc:      "Read fail: EOF on length VarInt (Length is 0x80)",
		expectErr: io.ErrUnexpectedEOF,
		v:         "",
		ser:       []byte{0x80}, // Missing the second byte of the VarInt length (e.g., length 128)
	},
	{
		desc:      "Read fail: EOF reading string content",
		expectErr: io.ErrUnexpectedEOF,
		v:         "",
		ser:       []byte{0x05, 0x48, 0x65, 0x6c}, // Length 5 (0x05), but only 3 bytes of data follow
	},
	{
		desc:      "Read fail: Invalid UTF-8",
		expectErr: ErrInvalidUTF8,
		v:         "",
		ser:       []byte{0x02, 0xc3, 0x28},
	},
	{
		desc:      "Read fail: Negative length prefix",
		expectErr: ErrNegativeLength,
		v:         "",
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, // VarInt encoding for -1
	},
}

func TestWriteString(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0))
	for _, tC := range stringTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteString(buf, tC.v)
			if err != nil {
				t.Fatalf("WriteString failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteString expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadString(t *testing.T) {
	for _, tC := range stringTc {
		t.Run(tC.desc, func(t *testing.T) {
			// Create a buffer initialized with the serialized bytes (tC.ser)
			r := NewBuffer(tC.ser)

			got, err := ReadString(&r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadString expected error %v, but succeeded and returned value %s", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadString expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadString failed: %v", err)
			}

			if got != tC.v {
				t.Errorf("ReadString expected %s, got %s", tC.v, got)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var pArrayTc = []TestCase[[]byte]{
	{
		desc: "Empty array",
		v:    []byte{},
		ser:  []byte{0x00}, // Length 0, encoded as 0x00
	},
	{
		desc: "Small array (Length 3)",
		v:    []byte{10, 20, 30},
		ser:  []byte{0x03, 10, 20, 30}, // Length 3 (0x03) + data
	},
	{
		desc: "Large array (Length 128)",
		v:    bytes.Repeat([]byte{0xAA}, 128),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{0xAA}, 128)...), // Length 128 (0x80 0x01) + data
	},
	{
		desc:      "Read fail: EOF on length VarInt (Length is 0x80)",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0x80}, // Missing the second byte of the VarInt length (e.g., length 128)
	},
	{
		desc:      "Read fail: count exceeds remaining bytes",
		expectErr: ErrArrayTooLong,
		v:         []byte{10, 20, 30},   // Expected array, but stream will be incomplete
		ser:       []byte{0x03, 10, 20}, // Length 3 (0x03), but only 2 bytes of data follow
	},
}

func TestWritePrefixedArray(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0))
	for _, tC := range pArrayTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WritePrefixedArray(buf, tC.v, WriteByte)
			if err != nil {
				t.Fatalf("WritePrefixedArray failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WritePrefixedArray expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadPrefixedArray(t *testing.T) {
	for _, tC := range pArrayTc {
		t.Run(tC.desc, func(t *testing.T) {
			// Create a buffer initialized with the serialized bytes (tC.ser)
			r := NewBuffer(tC.ser)

			got, err := ReadPrefixedArray(&r, ReadByte)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadPrefixedArray expected error %v, but succeeded and returned value %x", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadPrefixedArray expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadPrefixedArray failed: %v", err)
			}

			if !bytes.Equal(got, tC.v) {
				t.Errorf("ReadPrefixedArray expected %x, got %x", tC.v, got)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var optionalTc = []TestCase[Optional[byte]]{
	{
		desc: "Value is Present",
		v:    Optional[byte]{Exists: true, Item: 0x42},
		ser:  []byte{0x01, 0x42}, // True (0x01) + Item (0x42)
	},
	{
		desc: "Value is Absent",
		v:    Optional[byte]{Exists: false, Item: 0x00}, // Item value is ignored when Exists is false
		ser:  []byte{0x00},                              // False (0x00)
	},
	{
		desc:      "Read fail: EOF on Boolean prefix",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{},
	},
	{
		desc:      "Read fail: EOF reading Item when Exists is true",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0x01}, // True (0x01), but no item byte follows
	},
}

func TestWriteOptional(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0))
	for _, tC := range optionalTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteOptional(buf, tC.v, WriteByte)
			if err != nil {
				t.Fatalf("WriteOptional failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteOptional expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadOptional(t *testing.T) {
	for _, tC := range optionalTc {
		t.Run(tC.desc, func(t *testing.T) {
			// Create a buffer initialized with the serialized bytes (tC.ser)
			r := NewBuffer(tC.ser)

			got, err := ReadOptional(&r, ReadByte)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadOptional expected error %v, but succeeded and returned value %v", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadOptional expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadOptional failed: %v", err)
			}

			if got.Exists != tC.v.Exists {
				t.Errorf("Exists flag mismatch. Expected: %t, Got: %t", tC.v.Exists, got.Exists)
			}

			if got.Exists && got.Item != tC.v.Item {
				t.Errorf("Item mismatch. Expected: %v, Got: %v", tC.v.Item, got.Item)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

var varlongTc = []TestCase[int64]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "Min two bytes (128)",
		v:    128,
		ser:  []byte{0x80, 0x01},
	},
	{
		desc: "Max positive int32 (2147483647)",
		v:    2147483647,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Max positive int64",
		v:    9223372036854775807,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
	},
	{
		desc: "Negative one (-1)",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
	},
	{
		desc: "Min negative int64",
		v:    -9223372036854775808,
		ser:  []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01},
	},
	{
		desc:      "VarLong too long",
		expectErr: ErrVarLongTooLong,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
	},
	{
		desc:      "Unexpected EOF",
		expectErr: io.ErrUnexpectedEOF,
		ser:       []byte{0xff, 0xff},
	},
}

func TestWriteVarLong(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0, 10))
	for _, tC := range varlongTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteVarLong(buf, tC.v)
			if err != nil {
				t.Fatalf("WriteVarLong failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteVarLong expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadVarLong(t *testing.T) {
	for _, tC := range varlongTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewBuffer(tC.ser)

			got, err := ReadVarLong(&r)

			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadVarLong expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadVarLong failed: %v", err)
			}

			if got != tC.v {
				t.Errorf("ReadVarLong expected %d, got %d", tC.v, got)
			}

			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

func TestVarIntSize(t *testing.T) {
	for _, tC := range varintTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			if got := VarIntSize(tC.v); got != len(tC.ser) {
				t.Errorf("VarIntSize expected %d, got %d", len(tC.ser), got)
			}
		})
	}
}

var optVarIntTc = []TestCase[Optional[int32]]{
	{
		desc: "Absent",
		v:    Optional[int32]{},
		ser:  []byte{0x00},
	},
	{
		desc: "Present zero",
		v:    Some[int32](0),
		ser:  []byte{0x01},
	},
	{
		desc: "Present 127",
		v:    Some[int32](127),
		ser:  []byte{0x80, 0x01},
	},
}

func TestOptVarInt(t *testing.T) {
	for _, tC := range optVarIntTc {
		t.Run(tC.desc, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteOptVarInt(&buf, tC.v); err != nil {
				t.Fatalf("WriteOptVarInt failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteOptVarInt expected %x, got %x", tC.ser, buf.Bytes())
			}

			r := NewBuffer(tC.ser)
			got, err := ReadOptVarInt(&r)
			if err != nil {
				t.Fatalf("ReadOptVarInt failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadOptVarInt expected %+v, got %+v", tC.v, got)
			}
		})
	}
}

var optVarIntRangeTc = []TestCase[Optional[int32]]{
	{
		desc:      "Negative one",
		expectErr: ErrOptVarIntRange,
		v:         Some[int32](-1),
	},
	{
		desc:      "Min int32",
		expectErr: ErrOptVarIntRange,
		v:         Some[int32](math.MinInt32),
	},
	{
		desc:      "Max int32",
		expectErr: ErrOptVarIntRange,
		v:         Some[int32](math.MaxInt32),
	},
	{
		desc: "Largest encodable",
		v:    Some[int32](math.MaxInt32 - 1),
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
}

func TestWriteOptVarIntRange(t *testing.T) {
	for _, tC := range optVarIntRangeTc {
		t.Run(tC.desc, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteOptVarInt(&buf, tC.v)

			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Fatalf("WriteOptVarInt expected error %v, got %v", tC.expectErr, err)
				}
				if buf.Len() != 0 {
					t.Errorf("WriteOptVarInt wrote %x on error", buf.Bytes())
				}
				return
			}

			if err != nil {
				t.Fatalf("WriteOptVarInt failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteOptVarInt expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
	}
}

func TestReadOptVarIntNegative(t *testing.T) {
	r := NewBuffer([]byte{0xff, 0xff, 0xff, 0xff, 0x0f})
	if _, err := ReadOptVarInt(&r); !errors.Is(err, ErrOptVarIntRange) {
		t.Errorf("ReadOptVarInt expected error %v, got %v", ErrOptVarIntRange, err)
	}
}

func TestReadStringLimit(t *testing.T) {
	ser := append([]byte{0x80, 0x01}, bytes.Repeat([]byte{'a'}, 128)...)

	t.Run("Buffer limit", func(t *testing.T) {
		r := NewBuffer(ser)
		r.MaxStringLen = 127

		_, err := ReadString(&r)
		if !errors.Is(err, ErrStringTooLong) {
			t.Fatalf("ReadString expected error %v, got %v", ErrStringTooLong, err)
		}
	})

	t.Run("Length checked before content", func(t *testing.T) {
		// declares 40000 bytes with none following
		r := NewBuffer([]byte{0xc0, 0xb8, 0x02})

		_, err := ReadString(&r)
		if !errors.Is(err, ErrStringTooLong) {
			t.Fatalf("ReadString expected error %v, got %v", ErrStringTooLong, err)
		}
	})

	t.Run("Default limit", func(t *testing.T) {
		s := string(bytes.Repeat([]byte{'b'}, DefaultMaxStringLen))
		var buf bytes.Buffer
		if err := WriteString(&buf, s); err != nil {
			t.Fatalf("WriteString failed: %v", err)
		}

		r := NewBuffer(buf.Bytes())
		got, err := ReadString(&r)
		if err != nil {
			t.Fatalf("ReadString failed: %v", err)
		}
		if got != s {
			t.Errorf("ReadString returned %d bytes, expected %d", len(got), len(s))
		}
	})
}

func TestBoolean(t *testing.T) {
	for _, b := range []byte{0x00, 0x01} {
		r := NewBuffer([]byte{b})
		got, err := ReadBoolean(&r)
		if err != nil {
			t.Fatalf("ReadBoolean(%x) failed: %v", b, err)
		}
		if got != (b == 1) {
			t.Errorf("ReadBoolean(%x) returned %t", b, got)
		}
	}

	r := NewBuffer([]byte{0x02})
	if _, err := ReadBoolean(&r); !errors.Is(err, ErrInvalidBoolean) {
		t.Errorf("ReadBoolean expected error %v, got %v", ErrInvalidBoolean, err)
	}
}

func TestFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	steps := []func() error{
		func() error { return WriteSignedByte(&buf, -2) },
		func() error { return WriteShort(&buf, -300) },
		func() error { return WriteUnsignedShort(&buf, 25565) },
		func() error { return WriteInt(&buf, -70000) },
		func() error { return WriteLong(&buf, 1<<40) },
		func() error { return WriteFloat(&buf, 1.5) },
		func() error { return WriteDouble(&buf, -2.25) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	expected := []byte{
		0xfe,
		0xfe, 0xd4,
		0x63, 0xdd,
		0xff, 0xfe, 0xee, 0x90,
		0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x3f, 0xc0, 0x00, 0x00,
		0xc0, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("expected %x, got %x", expected, buf.Bytes())
	}

	r := NewBuffer(buf.Bytes())
	if v, err := ReadSignedByte(&r); err != nil || v != -2 {
		t.Errorf("ReadSignedByte returned %d, %v", v, err)
	}
	if v, err := ReadShort(&r); err != nil || v != -300 {
		t.Errorf("ReadShort returned %d, %v", v, err)
	}
	if v, err := ReadUnsignedShort(&r); err != nil || v != 25565 {
		t.Errorf("ReadUnsignedShort returned %d, %v", v, err)
	}
	if v, err := ReadInt(&r); err != nil || v != -70000 {
		t.Errorf("ReadInt returned %d, %v", v, err)
	}
	if v, err := ReadLong(&r); err != nil || v != 1<<40 {
		t.Errorf("ReadLong returned %d, %v", v, err)
	}
	if v, err := ReadFloat(&r); err != nil || v != 1.5 {
		t.Errorf("ReadFloat returned %v, %v", v, err)
	}
	if v, err := ReadDouble(&r); err != nil || v != -2.25 {
		t.Errorf("ReadDouble returned %v, %v", v, err)
	}

	if r.Remaining() != 0 {
		t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
	}
}

func TestReadIntUnderrunKeepsCursor(t *testing.T) {
	r := NewBuffer([]byte{0x01, 0x02})

	if _, err := ReadInt(&r); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("ReadInt expected error %v, got %v", io.ErrUnexpectedEOF, err)
	}
	if r.Offset() != 0 {
		t.Errorf("cursor moved to %d on underrun", r.Offset())
	}
}

var positionTc = []TestCase[Position]{
	{
		desc: "Origin",
		v:    Position{},
		ser:  []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	},
	{
		desc: "Mixed signs",
		v:    Position{X: 18357644, Y: 831, Z: -20882616},
		ser:  []byte{0x46, 0x07, 0x63, 0x2c, 0x15, 0xb4, 0x83, 0x3f},
	},
	{
		desc: "All negative one",
		v:    Position{X: -1, Y: -1, Z: -1},
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	},
	{
		desc: "Range limits",
		v:    Position{X: 33554431, Y: 2047, Z: -33554432},
		ser:  []byte{0x7f, 0xff, 0xff, 0xe0, 0x00, 0x00, 0x07, 0xff},
	},
}

func TestPosition(t *testing.T) {
	for _, tC := range positionTc {
		t.Run(tC.desc, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WritePosition(&buf, tC.v); err != nil {
				t.Fatalf("WritePosition failed: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WritePosition expected %x, got %x", tC.ser, buf.Bytes())
			}

			r := NewBuffer(tC.ser)
			got, err := ReadPosition(&r)
			if err != nil {
				t.Fatalf("ReadPosition failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadPosition expected %+v, got %+v", tC.v, got)
			}
		})
	}
}

func TestWritePositionOutOfRange(t *testing.T) {
	for _, p := range []Position{
		{X: 1 << 25},
		{Z: -1<<25 - 1},
		{Y: 2048},
		{Y: -2049},
	} {
		var buf bytes.Buffer
		if err := WritePosition(&buf, p); !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("WritePosition(%+v) expected error %v, got %v", p, ErrPositionOutOfRange, err)
		}
		if buf.Len() != 0 {
			t.Errorf("WritePosition(%+v) wrote %d bytes", p, buf.Len())
		}
	}
}

func TestUUID(t *testing.T) {
	id := uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")

	var buf bytes.Buffer
	if err := WriteUUID(&buf, id); err != nil {
		t.Fatalf("WriteUUID failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), id[:]) {
		t.Errorf("WriteUUID expected %x, got %x", id[:], buf.Bytes())
	}

	r := NewBuffer(buf.Bytes())
	got, err := ReadUUID(&r)
	if err != nil {
		t.Fatalf("ReadUUID failed: %v", err)
	}
	if got != id {
		t.Errorf("ReadUUID expected %s, got %s", id, got)
	}

	short := NewBuffer(id[:15])
	if _, err := ReadUUID(&short); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadUUID expected error %v, got %v", io.ErrUnexpectedEOF, err)
	}
}

func TestByteArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteByteArray(&buf, []byte{1, 2, 3}); err != nil {
		t.Fatalf("WriteByteArray failed: %v", err)
	}
	if err := WriteRemainingBytes(&buf, []byte{9, 9}); err != nil {
		t.Fatalf("WriteRemainingBytes failed: %v", err)
	}

	ser := buf.Bytes()
	r := NewBuffer(ser)
	arr, err := ReadByteArray(&r)
	if err != nil {
		t.Fatalf("ReadByteArray failed: %v", err)
	}
	rest, err := ReadRemainingBytes(&r)
	if err != nil {
		t.Fatalf("ReadRemainingBytes failed: %v", err)
	}

	if !bytes.Equal(arr, []byte{1, 2, 3}) || !bytes.Equal(rest, []byte{9, 9}) {
		t.Errorf("got %x and %x", arr, rest)
	}

	// decoded slices must not alias the frame
	ser[1] = 0xff
	if arr[0] != 1 {
		t.Errorf("ReadByteArray result aliases its input")
	}
}
