// Package index implements dependency resolution against an optional local package index.
package index

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// versionGrammar is the version grammar the resolver accepts. The recipe treats
// versions as opaque; this is the one place they are validated.
var versionGrammar = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9+._-]*$`)

// Indexfile represents the structure of the forge-index.yaml package index.
type Indexfile struct {
	Packages map[string][]string `yaml:"packages"`
}

// Resolver implements ports.DependencyResolver by pinning exact versions.
// When an index is loaded, a requirement naming an indexed package must match
// one of its listed versions; packages absent from the index resolve freely.
type Resolver struct {
	index  *Indexfile
	logger ports.Logger
}

// NewResolver creates a Resolver without an index.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// NewResolverFromIndex creates a Resolver constrained by the index file at the
// given path. A missing index file is not an error; the resolver then behaves
// as if no index was configured.
func NewResolverFromIndex(path string, logger ports.Logger) (*Resolver, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewResolver(logger), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "path", path)
	}

	var indexfile Indexfile
	if err := yaml.Unmarshal(data, &indexfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexParseFailed.Error()), "path", path)
	}

	logger.Info(fmt.Sprintf("using package index %s (%d packages)", path, len(indexfile.Packages)))
	return &Resolver{index: &indexfile, logger: logger}, nil
}

// Resolve pins a requirement to an exact version with a deterministic revision.
func (r *Resolver) Resolve(_ context.Context, req domain.Requirement) (domain.PinnedDependency, error) {
	name := req.Name.String()
	version := req.Version.String()

	if !versionGrammar.MatchString(version) {
		err := zerr.With(domain.ErrResolutionFailed, "name", name)
		return domain.PinnedDependency{}, zerr.With(err, "version", version)
	}

	if r.index != nil {
		if versions, indexed := r.index.Packages[name]; indexed && !slices.Contains(versions, version) {
			err := zerr.With(domain.ErrPackageNotIndexed, "name", name)
			return domain.PinnedDependency{}, zerr.With(err, "version", version)
		}
	}

	return domain.PinnedDependency{
		Name:     name,
		Version:  version,
		Revision: revision(name, version),
	}, nil
}

// revision derives a deterministic revision identifier for a pin.
func revision(name, version string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(name+"/"+version))
}
