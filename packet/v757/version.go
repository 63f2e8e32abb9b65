//go:generate go run ../../codegen/gen_packet_codec.go -- .

// Package v757 defines the packets of protocol 757 (Minecraft 1.18.1).
package v757

import (
	"github.com/gstoney/mcnet/packet"
	"github.com/gstoney/mcnet/registry"
)

const Protocol = 757

var handshakingPackets = []packet.Type{
	packet.ServerboundType[packet.Handshake](packet.Handshaking),
}

// Version is the registration table entry for this protocol.
var Version = registry.Version{
	Protocol: Protocol,
	Name:     "1.18.1",
	Packets:  Packets,
}

// Packets returns the packet types declared for state.
func Packets(state packet.State) []packet.Type {
	switch state {
	case packet.Handshaking:
		return handshakingPackets
	case packet.Status:
		return statusPackets
	case packet.Login:
		return loginPackets
	case packet.Play:
		return playPackets
	}
	return nil
}
