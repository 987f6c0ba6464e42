// Package domain contains the core domain models for the build configuration recipe.
package domain

import (
	"go.trai.ch/zerr"
)

// Recipe is the immutable build configuration descriptor loaded from forge.yaml.
// It declares which platform axes the build varies over, which generators to run,
// which external libraries must be made available, and which layout policy governs
// output placement. A constructed Recipe is never mutated and is safe for
// concurrent reads.
type Recipe struct {
	settings     []InternedString
	generators   []InternedString
	requirements []Requirement
	layout       InternedString
}

// NewRecipe constructs a Recipe from declared settings axes, generator identifiers,
// requirements, and a layout policy name.
//
// Duplicate or empty axes, duplicate generators, and duplicate or malformed
// requirements are construction failures: the descriptor is declarative data, so
// this is the only place such defects can be detected locally.
func NewRecipe(settings, generators []string, requirements []Requirement, layout string) (*Recipe, error) {
	axes := make([]InternedString, 0, len(settings))
	seenAxes := make(map[InternedString]bool, len(settings))
	for _, axis := range settings {
		if axis == "" {
			return nil, ErrEmptySettingAxis
		}
		in := NewInternedString(axis)
		if seenAxes[in] {
			return nil, zerr.With(ErrDuplicateSettingAxis, "axis", axis)
		}
		seenAxes[in] = true
		axes = append(axes, in)
	}

	gens := make([]InternedString, 0, len(generators))
	seenGens := make(map[InternedString]bool, len(generators))
	for _, gen := range generators {
		if gen == "" {
			return nil, ErrEmptyGenerator
		}
		in := NewInternedString(gen)
		if seenGens[in] {
			return nil, zerr.With(ErrDuplicateGenerator, "generator", gen)
		}
		seenGens[in] = true
		gens = append(gens, in)
	}

	reqs := make([]Requirement, 0, len(requirements))
	seenReqs := make(map[InternedString]bool, len(requirements))
	for _, req := range requirements {
		if req.Name.String() == "" || req.Version.String() == "" {
			err := zerr.With(ErrMalformedDependencySpec, "reason", "empty name or version")
			return nil, zerr.With(err, "reference", req.String())
		}
		if seenReqs[req.Name] {
			err := zerr.With(ErrMalformedDependencySpec, "reason", "duplicate library name")
			return nil, zerr.With(err, "name", req.Name.String())
		}
		seenReqs[req.Name] = true
		reqs = append(reqs, req)
	}

	return &Recipe{
		settings:     axes,
		generators:   gens,
		requirements: reqs,
		layout:       NewInternedString(layout),
	}, nil
}

// Settings returns the declared platform axes in declaration order.
func (r *Recipe) Settings() []InternedString {
	out := make([]InternedString, len(r.settings))
	copy(out, r.settings)
	return out
}

// Generators returns the declared generator identifiers in declaration order.
func (r *Recipe) Generators() []InternedString {
	out := make([]InternedString, len(r.generators))
	copy(out, r.generators)
	return out
}

// Requirements returns the declared requirements in declaration order.
// Names are unique; uniqueness is enforced at construction.
func (r *Recipe) Requirements() []Requirement {
	out := make([]Requirement, len(r.requirements))
	copy(out, r.requirements)
	return out
}

// Layout returns the name of the layout policy the recipe delegates to.
func (r *Recipe) Layout() InternedString {
	return r.layout
}

// Validate flags degenerate configurations that are structurally legal but
// meaningless to the external tooling. Currently this is only an empty
// requirements list.
func (r *Recipe) Validate() error {
	if len(r.requirements) == 0 {
		return ErrEmptyRequirements
	}
	return nil
}
