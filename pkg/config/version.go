package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the constraint a file's version must satisfy.
const SupportedVersions = "^1"

// CurrentVersion is written by Starter.
const CurrentVersion = "1.0.0"

// CheckVersion accepts an empty version or one within SupportedVersions.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, v, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !c.Check(ver) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, ver, SupportedVersions)
	}
	return nil
}
