// Package version implements semantic version parsing and patch bumping
// for the bump command. Versions are plain three-part semantic versions
// (major.minor.patch) without pre-release or build metadata; the -SNAPSHOT
// marker used by Maven descriptors is applied at render time via Snapshot.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an ordered triple of non-negative integers.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseError reports a version string that does not parse as major.minor.patch.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q: %s", e.Input, e.Reason)
}

// Parse parses a version string of the form "major.minor.patch".
// Exactly three dot-separated non-negative integer components are required;
// extra components, missing components, signs, or non-numeric components
// are rejected with a *ParseError.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, &ParseError{
			Input:  s,
			Reason: fmt.Sprintf("expected 3 dot-separated components, got %d", len(parts)),
		}
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return Version{}, &ParseError{
				Input:  s,
				Reason: fmt.Sprintf("component %q is not a non-negative integer", part),
			}
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// parseComponent parses a single numeric component.
// strconv.Atoi alone would accept "+1" and "-0", so the characters are
// checked first to keep the accepted grammar to plain digits.
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit character %q", r)
		}
	}
	return strconv.Atoi(s)
}

// Bump returns a copy of v with the patch component incremented.
// Major and minor are unchanged.
func (v Version) Bump() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// String renders the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Snapshot renders the version with the Maven -SNAPSHOT pre-release marker,
// the form propagated into build descriptors.
func (v Version) Snapshot() string {
	return v.String() + "-SNAPSHOT"
}
