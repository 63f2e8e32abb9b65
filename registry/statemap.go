package registry

import (
	"sort"

	"github.com/gstoney/mcnet/packet"
	"github.com/pkg/errors"
)

// StateMap resolves packet ids to types for one connection state.
// It is read-only once built.
type StateMap struct {
	state       packet.State
	serverbound map[int32]packet.Type
	clientbound map[int32]packet.Type
}

// NewStateMap indexes types by direction and id.
//
// With checkDuplicates set, an id claimed by two different types fails with
// *DuplicatePacketIDError; otherwise the later type wins. Listing the same
// type twice is never an error.
func NewStateMap(state packet.State, types []packet.Type, checkDuplicates bool) (*StateMap, error) {
	m := &StateMap{
		state:       state,
		serverbound: make(map[int32]packet.Type),
		clientbound: make(map[int32]packet.Type),
	}

	for _, t := range types {
		if !t.Valid() {
			return nil, errors.Errorf("invalid packet type in state %s", state)
		}
		if t.State() != state {
			return nil, errors.Wrapf(ErrStateMismatch, "%s declares %s, listed under %s", t.Name(), t.State(), state)
		}

		ids := m.byDirection(t.Direction())
		if prev, ok := ids[t.ID()]; ok && checkDuplicates && !prev.Same(t) {
			return nil, &DuplicatePacketIDError{
				Protocol:    UnknownProtocol,
				State:       state,
				ID:          t.ID(),
				Direction:   t.Direction(),
				Existing:    prev.Name(),
				Conflicting: t.Name(),
			}
		}
		ids[t.ID()] = t
	}

	return m, nil
}

func (m *StateMap) byDirection(d packet.Direction) map[int32]packet.Type {
	if d == packet.Serverbound {
		return m.serverbound
	}
	return m.clientbound
}

func (m *StateMap) State() packet.State {
	return m.state
}

// Get returns the type registered for id. A miss is not an error.
func (m *StateMap) Get(d packet.Direction, id int32) (packet.Type, bool) {
	t, ok := m.byDirection(d)[id]
	return t, ok
}

func (m *StateMap) Len(d packet.Direction) int {
	return len(m.byDirection(d))
}

// Types lists the registered types for d ordered by id.
func (m *StateMap) Types(d packet.Direction) []packet.Type {
	ids := m.byDirection(d)
	types := make([]packet.Type, 0, len(ids))
	for _, t := range ids {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID() < types[j].ID() })
	return types
}
