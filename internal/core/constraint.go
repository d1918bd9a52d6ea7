package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgresolver/internal/types"
)

// ParseVersionConstraint parses the version half of a constraint: a
// leading "=" marks an exact pin ("=1.2.3"), otherwise the string is an
// at-least requirement ("1.2.3"). This mirrors the teacher's op-token
// parsing (constraint.go) reduced to the spec's two constraint kinds.
func ParseVersionConstraint(raw string) (types.ConstraintKind, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty version constraint")
	}
	if strings.HasPrefix(raw, "=") {
		version := strings.TrimSpace(strings.TrimPrefix(raw, "="))
		if version == "" {
			return 0, "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid constraint: " + raw)
		}
		return types.ConstraintExact, version, nil
	}
	return types.ConstraintAtLeast, raw, nil
}

// ParseConstraintString splits a combined "name@version" or "name@=version"
// string into its name and version-constraint halves, e.g. as used for the
// CLI's repeatable --prefer flag and the manifest's unit-level constraint
// entries.
func ParseConstraintString(raw string) (name string, versionConstraint string, err error) {
	raw = strings.TrimSpace(raw)
	parts := strings.SplitN(raw, "@", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid constraint: %s", raw))
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}
