package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/fs"
	"go.trai.ch/forge/internal/adapters/generator"
	"go.trai.ch/forge/internal/adapters/index"
	"go.trai.ch/forge/internal/adapters/layout"
	"go.trai.ch/forge/internal/adapters/lockstore"
	"go.trai.ch/forge/internal/adapters/telemetry/progrock"
	"go.trai.ch/forge/internal/core/ports"
)

const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			layout.NodeID,
			generator.NodeID,
			index.NodeID,
			lockstore.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			layouts, err := graft.Dep[ports.LayoutRegistry](ctx)
			if err != nil {
				return nil, err
			}

			generators, err := graft.Dep[ports.GeneratorRegistry](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.DependencyResolver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.LockfileStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.RecipeHasher](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewPlanner(layouts, generators, resolver, store, hasher, telemetry), nil
		},
	})
}
