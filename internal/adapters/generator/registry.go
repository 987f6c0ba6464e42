package generator

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry implements ports.GeneratorRegistry over a fixed generator set.
type Registry struct {
	generators map[string]ports.Generator
}

// NewRegistry creates a Registry holding the given generators, keyed by name.
func NewRegistry(generators ...ports.Generator) *Registry {
	m := make(map[string]ports.Generator, len(generators))
	for _, g := range generators {
		m[g.Name()] = g
	}
	return &Registry{generators: m}
}

// Select returns the generators for the given identifiers, preserving the
// recipe's declaration order.
func (r *Registry) Select(names []domain.InternedString) ([]ports.Generator, error) {
	selected := make([]ports.Generator, 0, len(names))
	for _, name := range names {
		g, ok := r.generators[name.String()]
		if !ok {
			return nil, zerr.With(domain.ErrUnknownGenerator, "generator", name.String())
		}
		selected = append(selected, g)
	}
	return selected, nil
}
