package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.generator_registry"

func init() {
	graft.Register(graft.Node[ports.GeneratorRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GeneratorRegistry, error) {
			return NewRegistry(NewToolchain(), NewDeps()), nil
		},
	})
}
