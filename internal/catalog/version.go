package catalog

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current catalog vocabulary version. Descriptor packs
// declare the version they were authored against, and consumers can
// declare theirs through the version endpoint.
const Version = "1.2.0"

// IsCompatible checks a declared version against the catalog version
// using a caret constraint: same major version, equal or lower minor.
// Returns false with no error for a well-formed but incompatible
// version, and an error when either version string is not valid semver.
func IsCompatible(declared string) (bool, error) {
	constraint, err := semver.NewConstraint("^" + declared)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", declared, err)
	}

	current, err := semver.NewVersion(Version)
	if err != nil {
		return false, fmt.Errorf("invalid catalog version: %w", err)
	}

	return constraint.Check(current), nil
}
