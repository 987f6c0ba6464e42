// Package fs provides filesystem-adjacent hashing for recipes.
package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.RecipeHasher = (*Hasher)(nil)

// Hasher computes deterministic digests over a recipe's canonical form.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Digest hashes the recipe's declarations section by section.
// Declaration order is part of the canonical form: reordering axes or
// generators is a different configuration.
func (h *Hasher) Digest(recipe *domain.Recipe) string {
	hasher := xxhash.New()

	for _, axis := range recipe.Settings() {
		_, _ = hasher.WriteString(axis.String())
		_, _ = hasher.Write([]byte{0}) // Separator
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, gen := range recipe.Generators() {
		_, _ = hasher.WriteString(gen.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	for _, req := range recipe.Requirements() {
		_, _ = hasher.WriteString(req.String())
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	_, _ = hasher.WriteString(recipe.Layout().String())

	return fmt.Sprintf("%016x", hasher.Sum64())
}
