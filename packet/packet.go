package packet

import (
	"errors"
	"io"
	"reflect"
)

var ErrNotDecodable = errors.New("packet type is not decodable")

// Packet is implemented by every packet. The id is constant per type.
type Packet interface {
	ID() int32
}

// Decodable packets are received by the server.
type Decodable interface {
	Packet
	Decode(r *Buffer) error
}

// Encodable packets are sent by the server. Encode writes the body only;
// the packet id and frame length are written by the caller.
type Encodable interface {
	Packet
	Encode(w io.Writer) error
}

// State is the phase of a connection. It selects which packet set applies.
type State uint8

const (
	Handshaking State = iota
	Status
	Login
	Play
)

// States lists every connection state in protocol order.
var States = []State{Handshaking, Status, Login, Play}

func (s State) String() string {
	switch s {
	case Handshaking:
		return "Handshaking"
	case Status:
		return "Status"
	case Login:
		return "Login"
	case Play:
		return "Play"
	}
	return "UnknownState"
}

type Direction uint8

const (
	Serverbound Direction = iota
	Clientbound
)

func (d Direction) String() string {
	if d == Serverbound {
		return "serverbound"
	}
	return "clientbound"
}

// Type describes a packet type: where it belongs and how to make one.
// The zero Type is invalid.
type Type struct {
	id        int32
	state     State
	direction Direction
	rtype     reflect.Type
	newFn     func() Packet
}

// ServerboundType describes a packet the server decodes.
func ServerboundType[T any, PT interface {
	*T
	Decodable
}](state State) Type {
	return Type{
		id:        PT(new(T)).ID(),
		state:     state,
		direction: Serverbound,
		rtype:     reflect.TypeOf((*T)(nil)).Elem(),
		newFn:     func() Packet { return PT(new(T)) },
	}
}

// ClientboundType describes a packet the server encodes.
func ClientboundType[T any, PT interface {
	*T
	Encodable
}](state State) Type {
	return Type{
		id:        PT(new(T)).ID(),
		state:     state,
		direction: Clientbound,
		rtype:     reflect.TypeOf((*T)(nil)).Elem(),
		newFn:     func() Packet { return PT(new(T)) },
	}
}

func (t Type) ID() int32 {
	return t.id
}

func (t Type) State() State {
	return t.state
}

func (t Type) Direction() Direction {
	return t.direction
}

// Name is the Go type name, qualified by its package.
func (t Type) Name() string {
	if t.rtype == nil {
		return "<nil>"
	}
	return t.rtype.String()
}

// Same reports whether t and o describe the same Go type.
func (t Type) Same(o Type) bool {
	return t.rtype == o.rtype
}

// Matches reports whether p is an instance of this type, by value or pointer.
func (t Type) Matches(p Packet) bool {
	rt := reflect.TypeOf(p)
	if rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return rt == t.rtype
}

func (t Type) Valid() bool {
	return t.newFn != nil
}

// New returns a zero packet of this type.
func (t Type) New() Packet {
	return t.newFn()
}

// Decode reads a fresh packet of this type from r.
func (t Type) Decode(r *Buffer) (Decodable, error) {
	p, ok := t.newFn().(Decodable)
	if !ok {
		return nil, ErrNotDecodable
	}
	if err := p.Decode(r); err != nil {
		return p, err
	}
	return p, nil
}
