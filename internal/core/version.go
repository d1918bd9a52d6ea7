package core

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/hashicorp/go-version"
)

// ParseVersion parses a version string using the generic semver-like
// order the spec delegates to an external collaborator for. Unlike the
// teacher's per-ecosystem versionCache (APT vs. Pip parsers), the resolver
// core has exactly one version grammar regardless of what package it is
// attached to.
func ParseVersion(raw string) (*version.Version, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty version string")
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid version string — " + raw).
			WithCause(err)
	}
	return v, nil
}

// IsPrerelease reports whether v carries a pre-release segment (e.g.
// "1.2.0-rc1"), used by the "stable" cost policy to penalize pre-release
// choices.
func IsPrerelease(v *version.Version) bool {
	return v.Prerelease() != ""
}
