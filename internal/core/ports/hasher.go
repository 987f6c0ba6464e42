package ports

import "go.trai.ch/forge/internal/core/domain"

// RecipeHasher defines the interface for computing recipe digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type RecipeHasher interface {
	// Digest computes a deterministic digest over the recipe's canonical form.
	// Two recipes with identical declarations produce identical digests.
	Digest(recipe *domain.Recipe) string
}
