package domain

import "path/filepath"

const (
	// RecipeFileName is the name of the recipe file.
	RecipeFileName = "forge.yaml"

	// LockFileName is the name of the lockfile.
	LockFileName = "forge.lock"

	// IndexFileName is the name of the optional local package index.
	IndexFileName = "forge-index.yaml"

	// BuildDirName is the name of the build output directory.
	BuildDirName = "build"

	// GeneratorsDirName is the name of the directory generators emit into.
	GeneratorsDirName = "generators"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout is the resolved folder set a layout policy produced for one invocation.
// It is a value: the policy owns the side effects, the layout only records where
// they landed.
type Layout struct {
	// SourceDir is the directory holding the package sources.
	SourceDir string

	// BuildDir is the configuration-specific build directory.
	BuildDir string

	// GeneratorsDir is the directory generators emit their files into.
	GeneratorsDir string
}

// DefaultBuildPath returns the build directory for the given base and build type.
func DefaultBuildPath(baseDir, buildType string) string {
	return filepath.Join(baseDir, BuildDirName, buildType)
}

// DefaultGeneratorsPath returns the generators directory under the given build directory.
func DefaultGeneratorsPath(buildDir string) string {
	return filepath.Join(buildDir, GeneratorsDirName)
}
