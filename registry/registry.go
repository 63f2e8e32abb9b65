package registry

import (
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Registry builds protocol maps on first use and keeps them for the life of
// the process, or until Unload. Concurrent first loads of the same protocol
// share a single build.
type Registry struct {
	src  Source
	opts Options
	log  zerolog.Logger

	group singleflight.Group

	mu   sync.RWMutex
	maps map[int32]*Map
}

func New(src Source, opts Options, log zerolog.Logger) *Registry {
	return &Registry{
		src:  src,
		opts: opts,
		log:  log,
		maps: make(map[int32]*Map),
	}
}

func (r *Registry) cached(protocol int32) (*Map, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.maps[protocol]
	return m, ok
}

// Load returns the map for protocol, building it if needed. Failed builds are
// not cached.
func (r *Registry) Load(protocol int32) (*Map, error) {
	if m, ok := r.cached(protocol); ok {
		return m, nil
	}

	v, err, _ := r.group.Do(strconv.Itoa(int(protocol)), func() (any, error) {
		if m, ok := r.cached(protocol); ok {
			return m, nil
		}

		m, err := Build(r.src, protocol, r.opts)
		if err != nil {
			// the protocol number comes from the peer
			if errors.Is(err, ErrUnsupportedProtocol) {
				r.log.Debug().Int32("protocol", protocol).Msg("unsupported protocol")
			} else {
				r.log.Error().Err(err).Int32("protocol", protocol).Msg("failed to build packet map")
			}
			return nil, err
		}

		r.mu.Lock()
		r.maps[protocol] = m
		r.mu.Unlock()

		r.log.Debug().
			Int32("protocol", protocol).
			Str("version", m.Name()).
			Msg("built packet map")
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Map), nil
}

// Preload builds every listed protocol, stopping at the first failure.
func (r *Registry) Preload(protocols ...int32) error {
	for _, p := range protocols {
		if _, err := r.Load(p); err != nil {
			return err
		}
	}
	return nil
}

// Unload drops a built map. Connections holding it keep using their copy.
func (r *Registry) Unload(protocol int32) {
	r.mu.Lock()
	delete(r.maps, protocol)
	r.mu.Unlock()
}

// Loaded lists the protocols currently built.
func (r *Registry) Loaded() []int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	protocols := make([]int32, 0, len(r.maps))
	for p := range r.maps {
		protocols = append(protocols, p)
	}
	return protocols
}
