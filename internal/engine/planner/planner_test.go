package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/planner"
	"go.uber.org/mock/gomock"
)

func testRecipe(t *testing.T) *domain.Recipe {
	t.Helper()
	fmtReq, err := domain.ParseRequirement("fmt/11.0.2")
	require.NoError(t, err)
	utReq, err := domain.ParseRequirement("boost-ext-ut/1.1.9")
	require.NoError(t, err)
	reqs := []domain.Requirement{fmtReq, utReq}
	recipe, err := domain.NewRecipe(
		[]string{domain.AxisOS, domain.AxisCompiler, domain.AxisBuildType, domain.AxisArch},
		[]string{"CMakeToolchain", "CMakeDeps"},
		reqs,
		"cmake",
	)
	require.NoError(t, err)
	return recipe
}

func testBuildContext(t *testing.T, recipe *domain.Recipe) *domain.BuildContext {
	t.Helper()
	bctx, err := domain.NewBuildContext(recipe, t.TempDir(), map[string]string{
		domain.AxisOS:        "linux",
		domain.AxisCompiler:  "gcc",
		domain.AxisBuildType: "Release",
		domain.AxisArch:      "x86_64",
	})
	require.NoError(t, err)
	return bctx
}

type fixture struct {
	layouts    *mocks.MockLayoutRegistry
	policy     *mocks.MockLayoutPolicy
	generators *mocks.MockGeneratorRegistry
	resolver   *mocks.MockDependencyResolver
	store      *mocks.MockLockfileStore
	hasher     *mocks.MockRecipeHasher
	planner    *planner.Planner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		layouts:    mocks.NewMockLayoutRegistry(ctrl),
		policy:     mocks.NewMockLayoutPolicy(ctrl),
		generators: mocks.NewMockGeneratorRegistry(ctrl),
		resolver:   mocks.NewMockDependencyResolver(ctrl),
		store:      mocks.NewMockLockfileStore(ctrl),
		hasher:     mocks.NewMockRecipeHasher(ctrl),
	}
	f.planner = planner.NewPlanner(
		f.layouts,
		f.generators,
		f.resolver,
		f.store,
		f.hasher,
		telemetry.NewNoOp(),
	)
	return f
}

func (f *fixture) expectLayout(layout domain.Layout) {
	f.layouts.EXPECT().Policy("cmake").Return(f.policy, nil)
	f.policy.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(layout, nil)
}

func TestPlannerRun(t *testing.T) {
	recipe := testRecipe(t)
	layout := domain.Layout{SourceDir: "/src", BuildDir: "/src/build/Release", GeneratorsDir: "/src/build/Release/generators"}

	t.Run("resolves, locks and generates", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		f.expectLayout(layout)
		f.hasher.EXPECT().Digest(recipe).Return("abc123")
		f.store.EXPECT().Read().Return(nil, nil)

		for _, req := range recipe.Requirements() {
			pin := domain.PinnedDependency{
				Name:     req.Name.String(),
				Version:  req.Version.String(),
				Revision: "rev-" + req.Name.String(),
			}
			f.resolver.EXPECT().Resolve(gomock.Any(), req).Return(pin, nil)
		}

		var stored domain.Lockfile
		f.store.EXPECT().Write(gomock.Any()).DoAndReturn(func(lock domain.Lockfile) error {
			stored = lock
			return nil
		})

		ctrl := gomock.NewController(t)
		toolchain := mocks.NewMockGenerator(ctrl)
		toolchain.EXPECT().Name().Return("CMakeToolchain").AnyTimes()
		toolchain.EXPECT().Emit(gomock.Any(), recipe, bctx, layout, gomock.Any()).
			Return([]string{"/src/build/Release/generators/forge_toolchain.cmake"}, nil)
		deps := mocks.NewMockGenerator(ctrl)
		deps.EXPECT().Name().Return("CMakeDeps").AnyTimes()
		deps.EXPECT().Emit(gomock.Any(), recipe, bctx, layout, gomock.Any()).
			Return([]string{"/src/build/Release/generators/forge_deps.cmake"}, nil)
		f.generators.EXPECT().Select(recipe.Generators()).Return([]ports.Generator{toolchain, deps}, nil)

		result, err := f.planner.Run(context.Background(), recipe, bctx, 4)
		require.NoError(t, err)

		assert.Equal(t, layout, result.Layout)
		assert.False(t, result.LockReused)
		assert.Equal(t, []string{
			"/src/build/Release/generators/forge_deps.cmake",
			"/src/build/Release/generators/forge_toolchain.cmake",
		}, result.Written)

		assert.Equal(t, domain.LockfileVersion, stored.Version)
		assert.Equal(t, "abc123", stored.RecipeDigest)
		assert.Len(t, stored.Packages, 2)
		assert.Equal(t, "rev-fmt", stored.Packages["fmt"].Revision)

		assert.Equal(t, domain.VertexStatusCompleted, f.planner.StepStatus(planner.StepLayout))
		assert.Equal(t, domain.VertexStatusCompleted, f.planner.StepStatus(planner.StepResolve))
		assert.Equal(t, domain.VertexStatusCompleted, f.planner.StepStatus(planner.StepGenerate))
	})

	t.Run("reuses a lockfile that covers the recipe", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		existing := &domain.Lockfile{
			Version:      domain.LockfileVersion,
			RecipeDigest: "abc123",
			Packages: map[string]domain.PinnedDependency{
				"fmt":          {Name: "fmt", Version: "11.0.2", Revision: "r1"},
				"boost-ext-ut": {Name: "boost-ext-ut", Version: "1.1.9", Revision: "r2"},
			},
		}

		f.expectLayout(layout)
		f.hasher.EXPECT().Digest(recipe).Return("abc123")
		f.store.EXPECT().Read().Return(existing, nil)
		f.generators.EXPECT().Select(recipe.Generators()).Return(nil, nil)

		result, err := f.planner.Run(context.Background(), recipe, bctx, 1)
		require.NoError(t, err)

		assert.True(t, result.LockReused)
		assert.Equal(t, *existing, result.Lockfile)
		assert.Equal(t, domain.VertexStatusCached, f.planner.StepStatus(planner.StepResolve))
		assert.Equal(t, domain.VertexStatusSkipped, f.planner.StepStatus(planner.StepGenerate))
	})

	t.Run("re-resolves when the recipe digest changed", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		stale := &domain.Lockfile{
			Version:      domain.LockfileVersion,
			RecipeDigest: "old",
			Packages: map[string]domain.PinnedDependency{
				"fmt":          {Name: "fmt", Version: "11.0.2", Revision: "r1"},
				"boost-ext-ut": {Name: "boost-ext-ut", Version: "1.1.9", Revision: "r2"},
			},
		}

		f.expectLayout(layout)
		f.hasher.EXPECT().Digest(recipe).Return("abc123")
		f.store.EXPECT().Read().Return(stale, nil)
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(domain.PinnedDependency{Name: "fmt"}, nil).Times(2)
		f.store.EXPECT().Write(gomock.Any()).Return(nil)
		f.generators.EXPECT().Select(recipe.Generators()).Return(nil, nil)

		result, err := f.planner.Run(context.Background(), recipe, bctx, 1)
		require.NoError(t, err)
		assert.False(t, result.LockReused)
	})

	t.Run("fails when the layout policy is unknown", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		f.layouts.EXPECT().Policy("cmake").Return(nil, domain.ErrUnknownLayoutPolicy)

		_, err := f.planner.Run(context.Background(), recipe, bctx, 1)
		assert.ErrorIs(t, err, domain.ErrUnknownLayoutPolicy)
		assert.Equal(t, domain.VertexStatusFailed, f.planner.StepStatus(planner.StepLayout))
		assert.Equal(t, domain.VertexStatusPending, f.planner.StepStatus(planner.StepResolve))
	})

	t.Run("fails when layout delegation fails", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		f.layouts.EXPECT().Policy("cmake").Return(f.policy, nil)
		f.policy.EXPECT().Apply(gomock.Any(), gomock.Any()).
			Return(domain.Layout{}, domain.ErrLayoutDelegationFailed)

		_, err := f.planner.Run(context.Background(), recipe, bctx, 1)
		assert.ErrorIs(t, err, domain.ErrLayoutDelegationFailed)
		assert.Equal(t, domain.VertexStatusFailed, f.planner.StepStatus(planner.StepLayout))
	})

	t.Run("fails when a requirement cannot be resolved", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		f.expectLayout(layout)
		f.hasher.EXPECT().Digest(recipe).Return("abc123")
		f.store.EXPECT().Read().Return(nil, nil)
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(domain.PinnedDependency{}, domain.ErrResolutionFailed).
			MinTimes(1).MaxTimes(2)

		_, err := f.planner.Run(context.Background(), recipe, bctx, 1)
		assert.ErrorIs(t, err, domain.ErrResolutionFailed)
		assert.Equal(t, domain.VertexStatusFailed, f.planner.StepStatus(planner.StepResolve))
	})

	t.Run("fails when the lockfile cannot be written", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		f.expectLayout(layout)
		f.hasher.EXPECT().Digest(recipe).Return("abc123")
		f.store.EXPECT().Read().Return(nil, nil)
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(domain.PinnedDependency{Name: "fmt"}, nil).Times(2)
		f.store.EXPECT().Write(gomock.Any()).Return(domain.ErrLockWriteFailed)

		_, err := f.planner.Run(context.Background(), recipe, bctx, 2)
		assert.ErrorIs(t, err, domain.ErrLockWriteFailed)
	})

	t.Run("fails when a declared generator is unknown", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		f.expectLayout(layout)
		f.hasher.EXPECT().Digest(recipe).Return("abc123")
		f.store.EXPECT().Read().Return(nil, nil)
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(domain.PinnedDependency{Name: "fmt"}, nil).Times(2)
		f.store.EXPECT().Write(gomock.Any()).Return(nil)
		f.generators.EXPECT().Select(recipe.Generators()).Return(nil, domain.ErrUnknownGenerator)

		_, err := f.planner.Run(context.Background(), recipe, bctx, 2)
		assert.ErrorIs(t, err, domain.ErrUnknownGenerator)
		assert.Equal(t, domain.VertexStatusFailed, f.planner.StepStatus(planner.StepGenerate))
	})

	t.Run("fails when a generator cannot emit", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		f.expectLayout(layout)
		f.hasher.EXPECT().Digest(recipe).Return("abc123")
		f.store.EXPECT().Read().Return(nil, nil)
		f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(domain.PinnedDependency{Name: "fmt"}, nil).Times(2)
		f.store.EXPECT().Write(gomock.Any()).Return(nil)

		ctrl := gomock.NewController(t)
		broken := mocks.NewMockGenerator(ctrl)
		broken.EXPECT().Name().Return("CMakeToolchain").AnyTimes()
		broken.EXPECT().Emit(gomock.Any(), recipe, bctx, layout, gomock.Any()).
			Return(nil, domain.ErrGenerationFailed)
		f.generators.EXPECT().Select(recipe.Generators()).Return([]ports.Generator{broken}, nil)

		_, err := f.planner.Run(context.Background(), recipe, bctx, 1)
		assert.ErrorIs(t, err, domain.ErrGenerationFailed)
		assert.Equal(t, domain.VertexStatusFailed, f.planner.StepStatus(planner.StepGenerate))
	})

	t.Run("fails when the lockfile cannot be read", func(t *testing.T) {
		f := newFixture(t)
		bctx := testBuildContext(t, recipe)

		f.expectLayout(layout)
		f.hasher.EXPECT().Digest(recipe).Return("abc123")
		f.store.EXPECT().Read().Return(nil, domain.ErrLockReadFailed)

		_, err := f.planner.Run(context.Background(), recipe, bctx, 1)
		assert.ErrorIs(t, err, domain.ErrLockReadFailed)
	})
}

func TestPlannerStepStatusDefaultsToPending(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, domain.VertexStatusPending, f.planner.StepStatus(planner.StepLayout))
	assert.Equal(t, domain.VertexStatusPending, f.planner.StepStatus("nonsense"))
}
