package mcnet

import (
	"fmt"
	"io"
	"strings"

	"github.com/gstoney/mcnet/packet"
	"github.com/gstoney/mcnet/registry"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrUnknownPacket    = errors.New("unknown packet id")
	ErrTrailingBytes    = errors.New("trailing bytes after packet")
	ErrUnexpectedPacket = errors.New("packet not registered for current state")
)

// TrailingPolicy decides what happens to bytes left in a frame after its
// packet decoded successfully.
type TrailingPolicy uint8

const (
	// TrailingError fails the read with ErrTrailingBytes.
	TrailingError TrailingPolicy = iota
	// TrailingWarn logs the leftover and returns the packet.
	TrailingWarn
)

func (p TrailingPolicy) String() string {
	if p == TrailingWarn {
		return "warn"
	}
	return "error"
}

func (p TrailingPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *TrailingPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "error", "":
		*p = TrailingError
	case "warn":
		*p = TrailingWarn
	default:
		return errors.Errorf("unknown trailing bytes policy %q", text)
	}
	return nil
}

type CodecConfig struct {
	// MaxStringLen caps String fields of received packets. Zero means
	// packet.DefaultMaxStringLen.
	MaxStringLen  int            `toml:"max_string_len"`
	TrailingBytes TrailingPolicy `toml:"trailing_bytes"`
}

// DecodeError is a failure to turn one received frame into a packet. It only
// concerns the connection it happened on.
type DecodeError struct {
	State packet.State
	// ID is -1 when the packet id itself could not be read.
	ID     int32
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.ID < 0 {
		return fmt.Sprintf("decode %s packet id: %v", e.State, e.Err)
	}
	return fmt.Sprintf("decode %s packet 0x%02X at offset %d: %v", e.State, e.ID, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Conn reads and writes packets for one connection, dispatching received
// frames through the packet map of the negotiated protocol. A Conn belongs to
// a single goroutine.
type Conn struct {
	t       *Transport
	packets *registry.Map
	state   packet.State
	cfg     CodecConfig
	log     zerolog.Logger

	wbuf packet.Buffer
}

func NewConn(t *Transport, packets *registry.Map, cfg CodecConfig, log zerolog.Logger) *Conn {
	return &Conn{
		t:       t,
		packets: packets,
		state:   packet.Handshaking,
		cfg:     cfg,
		log:     log,
	}
}

func (c *Conn) Transport() *Transport {
	return c.t
}

func (c *Conn) State() packet.State {
	return c.state
}

// SetState switches the packet set used for subsequent reads and writes.
func (c *Conn) SetState(s packet.State) {
	c.state = s
}

func (c *Conn) Packets() *registry.Map {
	return c.packets
}

// SetPackets replaces the packet map, typically once the handshake has
// named the client's protocol.
func (c *Conn) SetPackets(m *registry.Map) {
	c.packets = m
}

func (c *Conn) Protocol() int32 {
	return c.packets.Protocol()
}

// ReadPacket receives one frame and decodes it as a serverbound packet of
// the current state. Decoding failures are *DecodeError.
func (c *Conn) ReadPacket() (packet.Decodable, error) {
	payload, err := c.t.Recv()
	if err != nil {
		return nil, err
	}
	return c.Decode(payload)
}

// Decode turns a frame payload (packet id followed by the body) into a
// packet, applying the trailing bytes policy.
func (c *Conn) Decode(payload []byte) (packet.Decodable, error) {
	b := packet.NewBuffer(payload)
	b.MaxStringLen = c.cfg.MaxStringLen

	id, err := packet.ReadVarInt(&b)
	if err != nil {
		return nil, &DecodeError{State: c.state, ID: -1, Offset: b.Offset(), Err: err}
	}

	typ, ok := c.packets.Get(c.state, packet.Serverbound, id)
	if !ok {
		return nil, &DecodeError{State: c.state, ID: id, Offset: b.Offset(), Err: ErrUnknownPacket}
	}

	p, err := typ.Decode(&b)
	if err != nil {
		return nil, &DecodeError{State: c.state, ID: id, Offset: b.Offset(), Err: err}
	}

	if n := b.Remaining(); n > 0 {
		if c.cfg.TrailingBytes == TrailingError {
			return nil, &DecodeError{State: c.state, ID: id, Offset: b.Offset(), Err: ErrTrailingBytes}
		}
		c.log.Warn().
			Stringer("state", c.state).
			Int32("packet_id", id).
			Str("packet", typ.Name()).
			Int("trailing", n).
			Msg("trailing bytes after packet")
	}

	return p, nil
}

// WritePacket encodes p with its id and sends it as one frame. p must be a
// clientbound packet registered for the current state.
func (c *Conn) WritePacket(p packet.Encodable) error {
	typ, ok := c.packets.Get(c.state, packet.Clientbound, p.ID())
	if !ok || !typ.Matches(p) {
		return errors.Wrapf(ErrUnexpectedPacket, "%T (0x%02X) in state %s", p, p.ID(), c.state)
	}

	c.wbuf.Reset()
	if err := EncodePacket(&c.wbuf, p); err != nil {
		return errors.Wrapf(err, "encode %T", p)
	}
	return c.t.Send(c.wbuf.Bytes())
}

// EncodePacket writes the packet id followed by the packet body.
func EncodePacket(w io.Writer, p packet.Encodable) error {
	if err := packet.WriteVarInt(w, p.ID()); err != nil {
		return err
	}
	return p.Encode(w)
}
