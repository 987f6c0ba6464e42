package layout

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.layout_registry"

func init() {
	graft.Register(graft.Node[ports.LayoutRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LayoutRegistry, error) {
			return NewRegistry(NewCMakeLayout()), nil
		},
	})
}
