// Package generator implements the output-format generators recipes can declare.
package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// ToolchainFileName is the file the toolchain generator emits.
const ToolchainFileName = "forge_toolchain.cmake"

// Toolchain implements the "CMakeToolchain" generator. It renders the build
// context's axis values into a CMake toolchain file the external build tool
// includes at configure time.
type Toolchain struct{}

// NewToolchain creates a new Toolchain generator.
func NewToolchain() *Toolchain {
	return &Toolchain{}
}

// Name returns the generator identifier.
func (g *Toolchain) Name() string {
	return "CMakeToolchain"
}

// Emit writes the toolchain file into the layout's generators directory.
func (g *Toolchain) Emit(_ context.Context, _ *domain.Recipe, bctx *domain.BuildContext, layout domain.Layout, _ *domain.Lockfile) ([]string, error) {
	var b strings.Builder
	b.WriteString("# Generated by forge. Do not edit.\n")

	for _, axis := range bctx.Axes() {
		fmt.Fprintf(&b, "# setting: %s=%s\n", axis, bctx.Value(axis))
	}
	b.WriteString("\n")

	if buildType := bctx.Value(domain.AxisBuildType); buildType != "" {
		fmt.Fprintf(&b, "set(CMAKE_BUILD_TYPE %q CACHE STRING \"Choose the type of build.\")\n", buildType)
	}
	if osName := bctx.Value(domain.AxisOS); osName != "" {
		fmt.Fprintf(&b, "set(CMAKE_SYSTEM_NAME %s)\n", cmakeSystemName(osName))
	}
	if arch := bctx.Value(domain.AxisArch); arch != "" {
		fmt.Fprintf(&b, "set(CMAKE_SYSTEM_PROCESSOR %s)\n", arch)
	}

	path := filepath.Join(layout.GeneratorsDir, ToolchainFileName)
	if err := os.WriteFile(path, []byte(b.String()), domain.FilePerm); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrGenerationFailed.Error())
		return nil, zerr.With(wrapped, "path", path)
	}

	return []string{path}, nil
}

func cmakeSystemName(osName string) string {
	switch osName {
	case "linux":
		return "Linux"
	case "darwin", "macos":
		return "Darwin"
	case "windows":
		return "Windows"
	default:
		return osName
	}
}
