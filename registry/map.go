package registry

import "github.com/gstoney/mcnet/packet"

// Map holds every state's packets for one protocol version. Once built it is
// never written to, so any number of connections may read it concurrently.
type Map struct {
	protocol int32
	name     string
	states   map[packet.State]*StateMap
}

func (m *Map) Protocol() int32 {
	return m.protocol
}

// Name is the symbolic version name, such as "1.18.1".
func (m *Map) Name() string {
	return m.name
}

// State returns the packets of s. States without packets yield an empty map.
func (m *Map) State(s packet.State) *StateMap {
	if sm, ok := m.states[s]; ok {
		return sm
	}
	sm, _ := NewStateMap(s, nil, false)
	return sm
}

func (m *Map) Get(s packet.State, d packet.Direction, id int32) (packet.Type, bool) {
	return m.State(s).Get(d, id)
}
