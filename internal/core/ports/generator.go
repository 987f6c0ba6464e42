package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// Generator produces one output format for the external build system
// (e.g., a toolchain file or a dependency manifest).
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type Generator interface {
	// Name returns the generator identifier as referenced by recipes.
	Name() string

	// Emit writes the generator's output files into the layout's generators
	// directory and returns the paths of the files it wrote.
	Emit(ctx context.Context, recipe *domain.Recipe, bctx *domain.BuildContext, layout domain.Layout, lock *domain.Lockfile) ([]string, error)
}

// GeneratorRegistry resolves generators by identifier.
type GeneratorRegistry interface {
	// Select returns the generators for the given identifiers, preserving order.
	// Returns domain.ErrUnknownGenerator if any identifier is not registered.
	Select(names []domain.InternedString) ([]Generator, error)
}
