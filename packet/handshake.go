package packet

import "io"

// Handshake opens every connection. Its layout has not changed across
// protocol versions, so it lives here rather than in a version package.
type Handshake struct {
	ProtocolVersion int32
	ServerAddr      string
	ServerPort      uint16
	Intent          int32
}

const (
	IntentStatus   int32 = 1
	IntentLogin    int32 = 2
	IntentTransfer int32 = 3
)

func (p Handshake) ID() int32 {
	return 0x00
}

// NextState maps the intent to the state the connection switches to.
// Unknown intents report false.
func (p Handshake) NextState() (State, bool) {
	switch p.Intent {
	case IntentStatus:
		return Status, true
	case IntentLogin, IntentTransfer:
		return Login, true
	}
	return Handshaking, false
}

func (p Handshake) Encode(w io.Writer) (err error) {
	if err = WriteVarInt(w, p.ProtocolVersion); err != nil {
		return
	}
	if err = WriteString(w, p.ServerAddr); err != nil {
		return
	}
	if err = WriteUnsignedShort(w, p.ServerPort); err != nil {
		return
	}
	return WriteVarInt(w, p.Intent)
}

func (p *Handshake) Decode(r *Buffer) (err error) {
	if p.ProtocolVersion, err = ReadVarInt(r); err != nil {
		return
	}
	// hostnames are capped at 255 characters
	if p.ServerAddr, err = ReadStringMax(r, 255*4); err != nil {
		return
	}
	if p.ServerPort, err = ReadUnsignedShort(r); err != nil {
		return
	}
	p.Intent, err = ReadVarInt(r)
	return
}
