// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/forge/internal/core/domain"

// RecipeLoader defines the interface for loading the build configuration recipe.
//
//go:generate go run go.uber.org/mock/mockgen -source=recipe_loader.go -destination=mocks/mock_recipe_loader.go -package=mocks
type RecipeLoader interface {
	// Load reads the recipe from the given working directory and returns the descriptor.
	Load(cwd string) (*domain.Recipe, error)
}
