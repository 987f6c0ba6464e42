package domain

import (
	"runtime"
	"sort"

	"go.trai.ch/zerr"
)

// Well-known setting axis names. A recipe may declare any axis; these are the
// ones the host can provide defaults for.
const (
	AxisOS        = "os"
	AxisCompiler  = "compiler"
	AxisBuildType = "build_type"
	AxisArch      = "arch"
)

// BuildContext is the per-invocation assignment of a value to every setting
// axis a recipe declares, plus the base directory the layout is rooted at.
// It is constructed once per invocation and read-only afterwards.
type BuildContext struct {
	baseDir string
	values  map[InternedString]string
}

// NewBuildContext binds axis values to the recipe's declared settings.
// Every declared axis must receive a value, and no value may target an
// undeclared axis.
func NewBuildContext(recipe *Recipe, baseDir string, values map[string]string) (*BuildContext, error) {
	declared := make(map[InternedString]bool)
	bound := make(map[InternedString]string, len(values))

	for _, axis := range recipe.Settings() {
		declared[axis] = true
		value, ok := values[axis.String()]
		if !ok || value == "" {
			return nil, zerr.With(ErrMissingSettingValue, "axis", axis.String())
		}
		bound[axis] = value
	}

	for axis := range values {
		if !declared[NewInternedString(axis)] {
			return nil, zerr.With(ErrUnknownSettingAxis, "axis", axis)
		}
	}

	return &BuildContext{baseDir: baseDir, values: bound}, nil
}

// BaseDir returns the directory the layout is rooted at.
func (c *BuildContext) BaseDir() string {
	return c.baseDir
}

// Value returns the bound value for the given axis, or "" if the axis is not bound.
func (c *BuildContext) Value(axis string) string {
	return c.values[NewInternedString(axis)]
}

// Axes returns the bound axis names in lexical order.
// Lexical rather than declaration order keeps digesting and rendering deterministic
// without the context having to retain the recipe.
func (c *BuildContext) Axes() []string {
	axes := make([]string, 0, len(c.values))
	for axis := range c.values {
		axes = append(axes, axis.String())
	}
	sort.Strings(axes)
	return axes
}

// HostDefaults returns default axis values detected from the host platform.
// Overrides from the command line are layered on top by the caller.
func HostDefaults() map[string]string {
	defaults := map[string]string{
		AxisOS:        runtime.GOOS,
		AxisArch:      hostArch(),
		AxisBuildType: "Release",
		AxisCompiler:  hostCompiler(),
	}
	return defaults
}

func hostArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "armv8"
	default:
		return runtime.GOARCH
	}
}

func hostCompiler() string {
	switch runtime.GOOS {
	case "darwin":
		return "apple-clang"
	case "windows":
		return "msvc"
	default:
		return "gcc"
	}
}
