package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
)

func testRecipe(t *testing.T) *domain.Recipe {
	t.Helper()
	recipe, err := domain.NewRecipe(
		[]string{"os", "compiler", "build_type", "arch"},
		[]string{"CMakeToolchain", "CMakeDeps"},
		[]domain.Requirement{mustRequirement(t, "fmt/11.0.2")},
		"cmake",
	)
	require.NoError(t, err)
	return recipe
}

func TestNewBuildContext_BindsAllAxes(t *testing.T) {
	ctx, err := domain.NewBuildContext(testRecipe(t), "/tmp/pkg", map[string]string{
		"os":         "linux",
		"compiler":   "gcc",
		"build_type": "Release",
		"arch":       "x86_64",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pkg", ctx.BaseDir())
	assert.Equal(t, "linux", ctx.Value("os"))
	assert.Equal(t, "Release", ctx.Value("build_type"))
	assert.Equal(t, []string{"arch", "build_type", "compiler", "os"}, ctx.Axes())
}

func TestNewBuildContext_MissingAxisValue(t *testing.T) {
	_, err := domain.NewBuildContext(testRecipe(t), ".", map[string]string{
		"os":       "linux",
		"compiler": "gcc",
		"arch":     "x86_64",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingSettingValue)
}

func TestNewBuildContext_UndeclaredAxis(t *testing.T) {
	_, err := domain.NewBuildContext(testRecipe(t), ".", map[string]string{
		"os":         "linux",
		"compiler":   "gcc",
		"build_type": "Release",
		"arch":       "x86_64",
		"cppstd":     "20",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSettingAxis)
}

func TestHostDefaults_CoverWellKnownAxes(t *testing.T) {
	defaults := domain.HostDefaults()
	for _, axis := range []string{domain.AxisOS, domain.AxisCompiler, domain.AxisBuildType, domain.AxisArch} {
		assert.NotEmpty(t, defaults[axis], "axis %s", axis)
	}
}

func TestLockfile_Covers(t *testing.T) {
	lock := &domain.Lockfile{
		Version:      domain.LockfileVersion,
		RecipeDigest: "abc",
		Packages: map[string]domain.PinnedDependency{
			"fmt": {Name: "fmt", Version: "11.0.2", Revision: "r1"},
		},
	}

	reqs := []domain.Requirement{mustRequirement(t, "fmt/11.0.2")}
	assert.True(t, lock.Covers("abc", reqs))
	assert.False(t, lock.Covers("other", reqs))
	assert.False(t, lock.Covers("abc", []domain.Requirement{mustRequirement(t, "fmt/10.0.0")}))
	assert.False(t, lock.Covers("abc", []domain.Requirement{mustRequirement(t, "zlib/1.3.1")}))
}
