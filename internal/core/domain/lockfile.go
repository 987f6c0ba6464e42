package domain

// LockfileVersion is the current lockfile format version.
const LockfileVersion = 1

// PinnedDependency is one requirement resolved to an exact, reproducible pin.
type PinnedDependency struct {
	// Name is the canonical library name (e.g., "fmt").
	Name string `json:"name"`

	// Version is the pinned version string (e.g., "11.0.2").
	Version string `json:"version"`

	// Revision is a deterministic revision identifier for the pin,
	// used to detect drift between invocations.
	Revision string `json:"revision"`
}

// Lockfile is the reproducible snapshot of all resolved requirements for a recipe.
type Lockfile struct {
	// Version is the lockfile format version, allowing future schema migrations.
	Version int `json:"version"`

	// RecipeDigest is the digest of the recipe the lockfile was produced from.
	// A mismatch marks the lockfile as stale.
	RecipeDigest string `json:"recipe_digest"`

	// Packages maps library names to their pins.
	Packages map[string]PinnedDependency `json:"packages"`
}

// Covers reports whether the lockfile was produced from a recipe with the given
// digest and pins every one of the given requirements at the declared version.
func (l *Lockfile) Covers(digest string, requirements []Requirement) bool {
	if l.RecipeDigest != digest {
		return false
	}
	for _, req := range requirements {
		pin, ok := l.Packages[req.Name.String()]
		if !ok || pin.Version != req.Version.String() {
			return false
		}
	}
	return true
}
