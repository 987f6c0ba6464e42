package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

const HasherNodeID graft.ID = "adapter.recipe_hasher"

func init() {
	graft.Register(graft.Node[ports.RecipeHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RecipeHasher, error) {
			return NewHasher(), nil
		},
	})
}
