package layout

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry implements ports.LayoutRegistry over a fixed policy set.
type Registry struct {
	policies map[string]ports.LayoutPolicy
}

// NewRegistry creates a Registry holding the given policies, keyed by name.
func NewRegistry(policies ...ports.LayoutPolicy) *Registry {
	m := make(map[string]ports.LayoutPolicy, len(policies))
	for _, p := range policies {
		m[p.Name()] = p
	}
	return &Registry{policies: m}
}

// Policy returns the policy registered under the given name.
func (r *Registry) Policy(name string) (ports.LayoutPolicy, error) {
	p, ok := r.policies[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownLayoutPolicy, "layout", name)
	}
	return p, nil
}
