package registry

import (
	"strconv"

	"github.com/gstoney/mcnet/packet"
	"github.com/pkg/errors"
)

// Version is one protocol's packet-definition set. Packets returns the types
// declared for a state, or nil when the state has none.
type Version struct {
	Protocol int32
	Name     string
	Packets  func(state packet.State) []packet.Type
}

// Source enumerates the packet sets the registry can build.
type Source interface {
	Lookup(protocol int32) (Version, bool)
}

// Table is a static Source.
type Table []Version

func (t Table) Lookup(protocol int32) (Version, bool) {
	for _, v := range t {
		if v.Protocol == protocol {
			return v, true
		}
	}
	return Version{}, false
}

// Resolve maps a version token, either a protocol number ("757") or a
// version name ("1.18.1"), to its protocol number.
func (t Table) Resolve(token string) (int32, error) {
	if n, err := strconv.ParseInt(token, 10, 32); err == nil {
		if _, ok := t.Lookup(int32(n)); ok {
			return int32(n), nil
		}
		return 0, errors.Wrapf(ErrUnsupportedProtocol, "protocol %d", n)
	}
	for _, v := range t {
		if v.Name == token {
			return v.Protocol, nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedProtocol, "version %q", token)
}

// Protocols lists the protocol numbers in table order.
func (t Table) Protocols() []int32 {
	protocols := make([]int32, len(t))
	for i, v := range t {
		protocols[i] = v.Protocol
	}
	return protocols
}

type Options struct {
	// SkipDuplicateCheck disables duplicate id detection. Only for sets
	// already validated by a build with checking enabled.
	SkipDuplicateCheck bool
}

// Build assembles the Map for protocol. It either succeeds for every state or
// returns the first error; duplicate id errors carry the protocol.
func Build(src Source, protocol int32, opts Options) (*Map, error) {
	v, ok := src.Lookup(protocol)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedProtocol, "protocol %d", protocol)
	}

	m := &Map{
		protocol: protocol,
		name:     v.Name,
		states:   make(map[packet.State]*StateMap, len(packet.States)),
	}
	for _, state := range packet.States {
		var types []packet.Type
		if v.Packets != nil {
			types = v.Packets(state)
		}

		sm, err := NewStateMap(state, types, !opts.SkipDuplicateCheck)
		if err != nil {
			var dup *DuplicatePacketIDError
			if errors.As(err, &dup) {
				withProtocol := *dup
				withProtocol.Protocol = protocol
				return nil, &withProtocol
			}
			return nil, errors.Wrapf(err, "protocol %d", protocol)
		}
		m.states[state] = sm
	}

	return m, nil
}
