package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// DepsManifestFileName is the aggregate manifest the deps generator emits.
const DepsManifestFileName = "forge_deps.cmake"

// Deps implements the "CMakeDeps" generator. It renders the pinned
// requirements into an aggregate dependency manifest plus one config file
// per library, so find_package resolves against exactly the locked versions.
type Deps struct{}

// NewDeps creates a new Deps generator.
func NewDeps() *Deps {
	return &Deps{}
}

// Name returns the generator identifier.
func (g *Deps) Name() string {
	return "CMakeDeps"
}

// Emit writes the dependency manifest and per-library config files.
// Requirements are emitted in recipe declaration order; the manifest is what
// the external tool includes, the config files are what find_package locates.
func (g *Deps) Emit(_ context.Context, recipe *domain.Recipe, _ *domain.BuildContext, layout domain.Layout, lock *domain.Lockfile) ([]string, error) {
	written := make([]string, 0, len(recipe.Requirements())+1)

	var manifest strings.Builder
	manifest.WriteString("# Generated by forge. Do not edit.\n")
	fmt.Fprintf(&manifest, "list(PREPEND CMAKE_PREFIX_PATH %q)\n\n", layout.GeneratorsDir)

	for _, req := range recipe.Requirements() {
		pin := pinFor(lock, req)
		fmt.Fprintf(&manifest, "# requires: %s/%s (revision %s)\n", pin.Name, pin.Version, pin.Revision)

		configPath := filepath.Join(layout.GeneratorsDir, pin.Name+"-config.cmake")
		config := renderConfig(pin)
		if err := os.WriteFile(configPath, []byte(config), domain.FilePerm); err != nil {
			wrapped := zerr.Wrap(err, domain.ErrGenerationFailed.Error())
			return nil, zerr.With(wrapped, "path", configPath)
		}
		written = append(written, configPath)
	}

	manifestPath := filepath.Join(layout.GeneratorsDir, DepsManifestFileName)
	if err := os.WriteFile(manifestPath, []byte(manifest.String()), domain.FilePerm); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrGenerationFailed.Error())
		return nil, zerr.With(wrapped, "path", manifestPath)
	}
	written = append(written, manifestPath)

	sort.Strings(written)
	return written, nil
}

// pinFor returns the locked pin for a requirement, falling back to the
// declared version when the lockfile has no entry for it.
func pinFor(lock *domain.Lockfile, req domain.Requirement) domain.PinnedDependency {
	if lock != nil {
		if pin, ok := lock.Packages[req.Name.String()]; ok {
			return pin
		}
	}
	return domain.PinnedDependency{
		Name:    req.Name.String(),
		Version: req.Version.String(),
	}
}

func renderConfig(pin domain.PinnedDependency) string {
	var b strings.Builder
	b.WriteString("# Generated by forge. Do not edit.\n")
	fmt.Fprintf(&b, "set(%s_VERSION %q)\n", cmakeVariableName(pin.Name), pin.Version)
	if pin.Revision != "" {
		fmt.Fprintf(&b, "set(%s_REVISION %q)\n", cmakeVariableName(pin.Name), pin.Revision)
	}
	fmt.Fprintf(&b, "set(%s_FOUND TRUE)\n", cmakeVariableName(pin.Name))
	return b.String()
}

func cmakeVariableName(name string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name))
}
