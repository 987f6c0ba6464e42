package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Requirement declares one external library dependency as a (name, version) pair.
// The version is an exact specifier; its grammar is owned by the resolver.
type Requirement struct {
	// Name is the library name as declared in the recipe (e.g., "fmt").
	Name InternedString

	// Version is the declared version specifier (e.g., "11.0.2").
	Version InternedString
}

// NewRequirement creates a Requirement, rejecting empty names and versions.
func NewRequirement(name, version string) (Requirement, error) {
	if strings.TrimSpace(name) == "" {
		return Requirement{}, zerr.With(ErrMalformedDependencySpec, "reason", "empty name")
	}
	if strings.TrimSpace(version) == "" {
		err := zerr.With(ErrMalformedDependencySpec, "reason", "empty version")
		return Requirement{}, zerr.With(err, "name", name)
	}
	return Requirement{
		Name:    NewInternedString(name),
		Version: NewInternedString(version),
	}, nil
}

// ParseRequirement parses a "name/version" reference as written in the recipe's
// requires list.
func ParseRequirement(ref string) (Requirement, error) {
	name, version, found := strings.Cut(ref, "/")
	if !found {
		err := zerr.With(ErrMalformedDependencySpec, "reason", "expected format: name/version")
		return Requirement{}, zerr.With(err, "reference", ref)
	}
	return NewRequirement(name, version)
}

// String returns the canonical "name/version" form of the requirement.
func (r Requirement) String() string {
	return r.Name.String() + "/" + r.Version.String()
}
