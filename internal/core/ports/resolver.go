package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// DependencyResolver pins a declared requirement to an exact, reproducible version.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// Resolve resolves a requirement to a pinned dependency.
	// The version grammar is owned by the resolver, not by the recipe.
	Resolve(ctx context.Context, req domain.Requirement) (domain.PinnedDependency, error)
}
