// Package layout implements the named directory-layout policies recipes delegate to.
package layout

import (
	"context"
	"os"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// CMakeLayout implements the "cmake" layout convention:
// sources at the base directory, a build folder per build type, and a
// generators folder inside the build folder.
type CMakeLayout struct{}

// NewCMakeLayout creates a new CMakeLayout.
func NewCMakeLayout() *CMakeLayout {
	return &CMakeLayout{}
}

// Name returns the policy name.
func (l *CMakeLayout) Name() string {
	return "cmake"
}

// Apply materializes the layout for the given build context.
// MkdirAll makes repeated application with an equivalent context a no-op.
func (l *CMakeLayout) Apply(_ context.Context, bctx *domain.BuildContext) (domain.Layout, error) {
	buildType := bctx.Value(domain.AxisBuildType)
	if buildType == "" {
		buildType = "Release"
	}

	buildDir := domain.DefaultBuildPath(bctx.BaseDir(), buildType)
	generatorsDir := domain.DefaultGeneratorsPath(buildDir)

	for _, dir := range []string{buildDir, generatorsDir} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			wrapped := zerr.Wrap(err, domain.ErrLayoutDelegationFailed.Error())
			return domain.Layout{}, zerr.With(wrapped, "path", dir)
		}
	}

	return domain.Layout{
		SourceDir:     bctx.BaseDir(),
		BuildDir:      buildDir,
		GeneratorsDir: generatorsDir,
	}, nil
}
