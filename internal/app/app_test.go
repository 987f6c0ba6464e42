package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/planner"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	recipes  *mocks.MockRecipeLoader
	layouts  *mocks.MockLayoutRegistry
	policy   *mocks.MockLayoutPolicy
	gens     *mocks.MockGeneratorRegistry
	resolver *mocks.MockDependencyResolver
	store    *mocks.MockLockfileStore
	hasher   *mocks.MockRecipeHasher
	logger   *mocks.MockLogger
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		recipes:  mocks.NewMockRecipeLoader(ctrl),
		layouts:  mocks.NewMockLayoutRegistry(ctrl),
		policy:   mocks.NewMockLayoutPolicy(ctrl),
		gens:     mocks.NewMockGeneratorRegistry(ctrl),
		resolver: mocks.NewMockDependencyResolver(ctrl),
		store:    mocks.NewMockLockfileStore(ctrl),
		hasher:   mocks.NewMockRecipeHasher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	plan := planner.NewPlanner(f.layouts, f.gens, f.resolver, f.store, f.hasher, telemetry.NewNoOp())
	f.app = app.New(f.recipes, plan, f.logger)
	return f
}

func testRecipe(t *testing.T, refs ...string) *domain.Recipe {
	t.Helper()
	reqs := make([]domain.Requirement, 0, len(refs))
	for _, ref := range refs {
		req, err := domain.ParseRequirement(ref)
		require.NoError(t, err)
		reqs = append(reqs, req)
	}
	recipe, err := domain.NewRecipe(
		[]string{domain.AxisOS, domain.AxisCompiler, domain.AxisBuildType, domain.AxisArch},
		[]string{"CMakeToolchain", "CMakeDeps"},
		reqs,
		"cmake",
	)
	require.NoError(t, err)
	return recipe
}

func TestAppInstall(t *testing.T) {
	t.Run("loads the recipe and runs the plan", func(t *testing.T) {
		f := newFixture(t)
		recipe := testRecipe(t, "fmt/11.0.2", "boost-ext-ut/1.1.9")
		base := t.TempDir()

		f.recipes.EXPECT().Load(base).Return(recipe, nil)
		f.layouts.EXPECT().Policy("cmake").Return(f.policy, nil)
		f.policy.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(domain.Layout{SourceDir: base}, nil)
		f.hasher.EXPECT().Digest(recipe).Return("d1")
		f.store.EXPECT().Read().Return(nil, nil)
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.Requirement) (domain.PinnedDependency, error) {
				return domain.PinnedDependency{
					Name:    req.Name.String(),
					Version: req.Version.String(),
				}, nil
			}).Times(2)
		f.store.EXPECT().Write(gomock.Any()).Return(nil)
		f.gens.EXPECT().Select(recipe.Generators()).Return(nil, nil)

		result, err := f.app.Install(context.Background(), app.InstallOptions{BaseDir: base})
		require.NoError(t, err)
		assert.Len(t, result.Lockfile.Packages, 2)
		assert.False(t, result.LockReused)
	})

	t.Run("applies setting overrides on top of host defaults", func(t *testing.T) {
		f := newFixture(t)
		recipe := testRecipe(t, "fmt/11.0.2")
		base := t.TempDir()

		f.recipes.EXPECT().Load(base).Return(recipe, nil)
		f.layouts.EXPECT().Policy("cmake").Return(f.policy, nil)
		f.policy.EXPECT().Apply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, bctx *domain.BuildContext) (domain.Layout, error) {
				assert.Equal(t, "Debug", bctx.Value(domain.AxisBuildType))
				assert.NotEmpty(t, bctx.Value(domain.AxisOS))
				return domain.Layout{}, nil
			})
		f.hasher.EXPECT().Digest(recipe).Return("d1")
		f.store.EXPECT().Read().Return(nil, nil)
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.PinnedDependency{Name: "fmt"}, nil)
		f.store.EXPECT().Write(gomock.Any()).Return(nil)
		f.gens.EXPECT().Select(recipe.Generators()).Return(nil, nil)

		_, err := f.app.Install(context.Background(), app.InstallOptions{
			BaseDir:  base,
			Settings: map[string]string{domain.AxisBuildType: "Debug"},
		})
		require.NoError(t, err)
	})

	t.Run("rejects overrides for undeclared axes", func(t *testing.T) {
		f := newFixture(t)
		recipe := testRecipe(t, "fmt/11.0.2")
		base := t.TempDir()

		f.recipes.EXPECT().Load(base).Return(recipe, nil)

		_, err := f.app.Install(context.Background(), app.InstallOptions{
			BaseDir:  base,
			Settings: map[string]string{"flavour": "spicy"},
		})
		assert.ErrorIs(t, err, domain.ErrUnknownSettingAxis)
	})

	t.Run("warns when the recipe declares no requirements", func(t *testing.T) {
		f := newFixture(t)
		recipe := testRecipe(t)
		base := t.TempDir()

		f.recipes.EXPECT().Load(base).Return(recipe, nil)
		f.logger.EXPECT().Warn(gomock.Any())
		f.layouts.EXPECT().Policy("cmake").Return(f.policy, nil)
		f.policy.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(domain.Layout{}, nil)
		f.hasher.EXPECT().Digest(recipe).Return("d1")
		f.store.EXPECT().Read().Return(nil, nil)
		f.store.EXPECT().Write(gomock.Any()).Return(nil)
		f.gens.EXPECT().Select(recipe.Generators()).Return(nil, nil)

		result, err := f.app.Install(context.Background(), app.InstallOptions{BaseDir: base})
		require.NoError(t, err)
		assert.Empty(t, result.Lockfile.Packages)
	})

	t.Run("fails when the recipe cannot be loaded", func(t *testing.T) {
		f := newFixture(t)
		base := t.TempDir()

		f.recipes.EXPECT().Load(base).Return(nil, domain.ErrRecipeNotFound)

		_, err := f.app.Install(context.Background(), app.InstallOptions{BaseDir: base})
		assert.Error(t, err)
	})
}

func TestAppInspect(t *testing.T) {
	f := newFixture(t)
	recipe := testRecipe(t, "fmt/11.0.2", "boost-ext-ut/1.1.9")

	f.recipes.EXPECT().Load(".").Return(recipe, nil)

	var buf bytes.Buffer
	require.NoError(t, f.app.Inspect(context.Background(), "", &buf))

	out := buf.String()
	assert.Contains(t, out, "settings:")
	assert.Contains(t, out, "  os\n")
	assert.Contains(t, out, "  CMakeToolchain\n")
	assert.Contains(t, out, "  fmt/11.0.2\n")
	assert.Contains(t, out, "layout: cmake\n")
}

func TestAppClean(t *testing.T) {
	t.Run("removes the build directory", func(t *testing.T) {
		f := newFixture(t)
		base := t.TempDir()
		buildDir := filepath.Join(base, domain.BuildDirName)
		require.NoError(t, os.MkdirAll(filepath.Join(buildDir, "Release", "generators"), 0o750))

		f.logger.EXPECT().Info(gomock.Any())

		require.NoError(t, f.app.Clean(context.Background(), base))
		assert.NoDirExists(t, buildDir)
	})

	t.Run("is a no-op when nothing was installed", func(t *testing.T) {
		f := newFixture(t)
		base := t.TempDir()

		f.logger.EXPECT().Info(gomock.Any())

		require.NoError(t, f.app.Clean(context.Background(), base))
	})
}
