package registry

import (
	"fmt"

	"github.com/gstoney/mcnet/packet"
	"github.com/pkg/errors"
)

// UnknownProtocol marks a DuplicatePacketIDError raised by a StateMap
// before Build attached the protocol.
const UnknownProtocol int32 = -1

var (
	ErrUnsupportedProtocol = errors.New("unsupported protocol version")
	ErrStateMismatch       = errors.New("packet type listed under the wrong state")
)

// DuplicatePacketIDError reports two packet types claiming the same id in
// the same state and direction. It is only raised while building.
type DuplicatePacketIDError struct {
	Protocol    int32
	State       packet.State
	ID          int32
	Direction   packet.Direction
	Existing    string
	Conflicting string
}

func (e *DuplicatePacketIDError) Error() string {
	protocol := "unknown"
	if e.Protocol != UnknownProtocol {
		protocol = fmt.Sprint(e.Protocol)
	}
	return fmt.Sprintf("duplicate %s packet id 0x%02X in state %s of protocol %s: %s conflicts with %s",
		e.Direction, e.ID, e.State, protocol, e.Conflicting, e.Existing)
}
