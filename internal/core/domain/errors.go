package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedDependencySpec is returned when a declared requirement is empty,
	// duplicated, or structurally invalid.
	ErrMalformedDependencySpec = zerr.New("malformed dependency specification")

	// ErrDuplicateSettingAxis is returned when a setting axis is declared more than once.
	ErrDuplicateSettingAxis = zerr.New("duplicate setting axis")

	// ErrEmptySettingAxis is returned when a setting axis name is empty.
	ErrEmptySettingAxis = zerr.New("setting axis name is empty")

	// ErrEmptyGenerator is returned when a generator identifier is empty.
	ErrEmptyGenerator = zerr.New("generator identifier is empty")

	// ErrDuplicateGenerator is returned when a generator is declared more than once.
	ErrDuplicateGenerator = zerr.New("duplicate generator")

	// ErrEmptyRequirements is returned when a recipe declares no requirements.
	ErrEmptyRequirements = zerr.New("recipe declares no requirements")

	// ErrMissingSettingValue is returned when a build context lacks a value for a declared axis.
	ErrMissingSettingValue = zerr.New("missing value for setting axis")

	// ErrUnknownSettingAxis is returned when a build context carries a value for an undeclared axis.
	ErrUnknownSettingAxis = zerr.New("value provided for undeclared setting axis")

	// ErrInvalidSettingOverride is returned when a settings override is not of the form axis=value.
	ErrInvalidSettingOverride = zerr.New("invalid setting override, expected format: axis=value")

	// ErrLayoutDelegationFailed is returned when the layout policy reports a failure.
	// The underlying cause is attached unchanged and is not retried.
	ErrLayoutDelegationFailed = zerr.New("layout delegation failed")

	// ErrUnknownLayoutPolicy is returned when a recipe names a layout policy that is not registered.
	ErrUnknownLayoutPolicy = zerr.New("unknown layout policy")

	// ErrUnknownGenerator is returned when a recipe names a generator that is not registered.
	ErrUnknownGenerator = zerr.New("unknown generator")

	// ErrGenerationFailed is returned when a generator fails to emit its output files.
	ErrGenerationFailed = zerr.New("generator emission failed")

	// ErrRecipeNotFound is returned when the recipe file cannot be found.
	ErrRecipeNotFound = zerr.New("could not find recipe file")

	// ErrRecipeReadFailed is returned when the recipe file cannot be read.
	ErrRecipeReadFailed = zerr.New("failed to read recipe file")

	// ErrRecipeParseFailed is returned when the recipe file cannot be parsed.
	ErrRecipeParseFailed = zerr.New("failed to parse recipe file")

	// ErrResolutionFailed is returned when a requirement cannot be resolved to a pin.
	ErrResolutionFailed = zerr.New("failed to resolve requirement")

	// ErrPackageNotIndexed is returned when a requirement is absent from a configured package index.
	ErrPackageNotIndexed = zerr.New("package version not present in index")

	// ErrIndexReadFailed is returned when the package index cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read package index")

	// ErrIndexParseFailed is returned when the package index cannot be parsed.
	ErrIndexParseFailed = zerr.New("failed to parse package index")

	// ErrLockReadFailed is returned when the lockfile cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lockfile")

	// ErrLockUnmarshalFailed is returned when the lockfile cannot be unmarshaled.
	ErrLockUnmarshalFailed = zerr.New("failed to unmarshal lockfile")

	// ErrLockMarshalFailed is returned when the lockfile cannot be marshaled.
	ErrLockMarshalFailed = zerr.New("failed to marshal lockfile")

	// ErrLockWriteFailed is returned when the lockfile cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lockfile")

	// ErrInstallFailed is returned when the install plan fails.
	ErrInstallFailed = zerr.New("install failed")

	// ErrCleanFailed is returned when removing the build tree fails.
	ErrCleanFailed = zerr.New("failed to clean build tree")
)
