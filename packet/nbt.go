package packet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
)

var ErrNBTDecode = errors.New("malformed NBT")

// NBT holds one named binary tag exactly as it appears on the wire: tag type,
// root name and payload. A nil NBT stands for the lone TAG_End byte that
// marks an absent tag.
type NBT []byte

// MarshalNBT encodes v as an unnamed root tag. Structs use `nbt` field tags.
func MarshalNBT(v any) (NBT, error) {
	b, err := nbt.Marshal(v)
	if err != nil {
		return nil, err
	}
	return NBT(b), nil
}

// Unmarshal decodes the tag into v. An absent tag leaves v untouched.
func (n NBT) Unmarshal(v any) error {
	if len(n) == 0 {
		return nil
	}
	if err := nbt.Unmarshal(n, v); err != nil {
		return fmt.Errorf("%w: %v", ErrNBTDecode, err)
	}
	return nil
}

func WriteNBT(w io.Writer, v NBT) (err error) {
	if len(v) == 0 {
		return WriteByte(w, 0)
	}
	_, err = w.Write(v)
	return
}

// ReadNBT walks one tag to find where it ends and returns a copy of its bytes.
// The cursor does not move when the tag is malformed.
func ReadNBT(r *Buffer) (NBT, error) {
	start := r.off
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if tag == 0 {
		return nil, nil
	}
	r.off = start

	var v any
	if _, err := nbt.NewDecoder(r).Decode(&v); err != nil {
		r.off = start
		return nil, fmt.Errorf("%w: %v", ErrNBTDecode, err)
	}
	return bytes.Clone(r.buf[start:r.off]), nil
}

// Slot is an inventory item stack. Empty slots carry only Present=false.
type Slot struct {
	Present bool
	ItemID  int32
	Count   int8
	NBT     NBT
}

func WriteSlot(w io.Writer, v Slot) (err error) {
	if err = WriteBoolean(w, v.Present); err != nil || !v.Present {
		return
	}
	if err = WriteVarInt(w, v.ItemID); err != nil {
		return
	}
	if err = WriteSignedByte(w, v.Count); err != nil {
		return
	}
	return WriteNBT(w, v.NBT)
}

func ReadSlot(r *Buffer) (v Slot, err error) {
	if v.Present, err = ReadBoolean(r); err != nil || !v.Present {
		return
	}
	if v.ItemID, err = ReadVarInt(r); err != nil {
		return
	}
	if v.Count, err = ReadSignedByte(r); err != nil {
		return
	}
	v.NBT, err = ReadNBT(r)
	return
}
