//go:generate go run ../../codegen/gen_packet_codec.go -- .

// Package v773 defines the packets of protocol 773 (Minecraft 1.21.9).
//
// Only the states a proxy or status responder needs are mapped. The play
// state is left empty and the configuration state is not modelled.
package v773

import (
	"github.com/gstoney/mcnet/packet"
	"github.com/gstoney/mcnet/registry"
)

const Protocol = 773

var handshakingPackets = []packet.Type{
	packet.ServerboundType[packet.Handshake](packet.Handshaking),
}

var Version = registry.Version{
	Protocol: Protocol,
	Name:     "1.21.9",
	Packets:  Packets,
}

func Packets(state packet.State) []packet.Type {
	switch state {
	case packet.Handshaking:
		return handshakingPackets
	case packet.Status:
		return statusPackets
	case packet.Login:
		return loginPackets
	}
	return nil
}
