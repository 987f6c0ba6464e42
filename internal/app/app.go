// Package app implements the application layer for forge.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/planner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	recipes ports.RecipeLoader
	planner *planner.Planner
	logger  ports.Logger
}

// New creates a new App instance.
func New(recipes ports.RecipeLoader, plan *planner.Planner, logger ports.Logger) *App {
	return &App{
		recipes: recipes,
		planner: plan,
		logger:  logger,
	}
}

// InstallOptions configures one install invocation.
type InstallOptions struct {
	// BaseDir is the directory holding the recipe file. Defaults to ".".
	BaseDir string

	// Settings overrides individual axis values on top of the host defaults.
	Settings map[string]string

	// Parallelism bounds concurrent resolution and generation.
	// Zero means one worker per CPU.
	Parallelism int
}

// Install loads the recipe, applies its layout, resolves and pins all
// requirements, and runs the declared generators.
func (a *App) Install(ctx context.Context, opts InstallOptions) (*planner.Result, error) {
	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	recipe, err := a.recipes.Load(baseDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load recipe")
	}

	if err := recipe.Validate(); err != nil {
		if !errors.Is(err, domain.ErrEmptyRequirements) {
			return nil, err
		}
		a.logger.Warn("recipe declares no requirements, nothing to pin")
	}

	values := domain.HostDefaults()
	for axis := range values {
		if !declaresAxis(recipe, axis) {
			delete(values, axis)
		}
	}
	for axis, value := range opts.Settings {
		values[axis] = value
	}

	bctx, err := domain.NewBuildContext(recipe, baseDir, values)
	if err != nil {
		return nil, err
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	result, err := a.planner.Run(ctx, recipe, bctx, parallelism)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	return result, nil
}

// Inspect loads the recipe and renders its declared configuration to w.
func (a *App) Inspect(_ context.Context, baseDir string, w io.Writer) error {
	if baseDir == "" {
		baseDir = "."
	}

	recipe, err := a.recipes.Load(baseDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load recipe")
	}

	fmt.Fprintln(w, "settings:")
	for _, axis := range recipe.Settings() {
		fmt.Fprintf(w, "  %s\n", axis.String())
	}
	fmt.Fprintln(w, "generators:")
	for _, gen := range recipe.Generators() {
		fmt.Fprintf(w, "  %s\n", gen.String())
	}
	fmt.Fprintln(w, "requires:")
	for _, req := range recipe.Requirements() {
		fmt.Fprintf(w, "  %s\n", req.String())
	}
	fmt.Fprintf(w, "layout: %s\n", recipe.Layout().String())
	return nil
}

// Clean removes the build directory the layout policy produced.
// The lockfile is kept so a later install can still reuse the pins.
func (a *App) Clean(_ context.Context, baseDir string) error {
	if baseDir == "" {
		baseDir = "."
	}

	buildDir := filepath.Join(baseDir, domain.BuildDirName)
	if err := os.RemoveAll(buildDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", buildDir)
	}

	a.logger.Info(fmt.Sprintf("removed %s", buildDir))
	return nil
}

func declaresAxis(recipe *domain.Recipe, axis string) bool {
	in := domain.NewInternedString(axis)
	for _, declared := range recipe.Settings() {
		if declared == in {
			return true
		}
	}
	return false
}
