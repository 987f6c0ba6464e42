// Package config provides the recipe loader for forge.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileRecipeLoader implements ports.RecipeLoader using a YAML file.
type FileRecipeLoader struct {
	Filename string
}

// Load reads the recipe from the given working directory.
func (l *FileRecipeLoader) Load(cwd string) (*domain.Recipe, error) {
	filename := l.Filename
	if filename == "" {
		filename = domain.RecipeFileName
	}
	return Load(filepath.Join(cwd, filename))
}

// Load reads a recipe file from the given path and returns the descriptor.
// All structural validation (duplicate axes, duplicate or malformed requires)
// happens here, at construction time.
func Load(path string) (*domain.Recipe, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrRecipeNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecipeReadFailed.Error()), "path", path)
	}

	var recipefile Recipefile
	if err := yaml.Unmarshal(data, &recipefile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecipeParseFailed.Error()), "path", path)
	}

	requires := make([]domain.Requirement, 0, len(recipefile.Requires))
	for _, ref := range recipefile.Requires {
		req, err := domain.ParseRequirement(ref)
		if err != nil {
			return nil, err
		}
		requires = append(requires, req)
	}

	layout := recipefile.Layout
	if layout == "" {
		layout = "cmake"
	}

	return domain.NewRecipe(recipefile.Settings, recipefile.Generators, requires, layout)
}
