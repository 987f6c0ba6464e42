package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "adapter.recipe_loader"

func init() {
	graft.Register(graft.Node[ports.RecipeLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RecipeLoader, error) {
			return &FileRecipeLoader{Filename: domain.RecipeFileName}, nil
		},
	})
}
