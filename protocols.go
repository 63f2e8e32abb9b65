package mcnet

import (
	"github.com/gstoney/mcnet/packet/v757"
	"github.com/gstoney/mcnet/packet/v773"
	"github.com/gstoney/mcnet/registry"
	"github.com/rs/zerolog"
)

// Protocols is the registration table of every packet set shipped with this
// module.
var Protocols = registry.Table{
	v757.Version,
	v773.Version,
}

// NewRegistry creates a registry over Protocols and eagerly builds the
// default protocol plus every version listed in cfg.Preload.
func NewRegistry(cfg Config, log zerolog.Logger) (*registry.Registry, error) {
	r := registry.New(Protocols, registry.Options{
		SkipDuplicateCheck: cfg.Registry.SkipDuplicateCheck,
	}, log)

	protocols := []int32{cfg.DefaultProtocol}
	for _, token := range cfg.Preload {
		p, err := Protocols.Resolve(token)
		if err != nil {
			return nil, err
		}
		protocols = append(protocols, p)
	}

	if err := r.Preload(protocols...); err != nil {
		return nil, err
	}
	return r, nil
}
