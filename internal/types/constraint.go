package types

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// Constraint restricts which UnitVersion a dependency on Name may resolve
// to. Constraints are interned by the Resolver registry: two Constraints
// built from the same (name, version-constraint string) are the same
// pointer.
type Constraint struct {
	Name    string
	Kind    ConstraintKind
	Version *version.Version
}

// IsSatisfied reports whether uv meets this constraint. An exact constraint
// holds iff uv.Version equals the constraint's version exactly. An at-least
// constraint holds iff the constraint's version is no greater than uv's
// version, and uv's ecv is no greater than the constraint's version (so a
// later, incompatible major version cannot silently satisfy an older ask).
func (c *Constraint) IsSatisfied(uv *UnitVersion) bool {
	if c == nil || uv == nil {
		return false
	}
	switch c.Kind {
	case ConstraintExact:
		return uv.Version.Equal(c.Version)
	default:
		constraintBelowOrAtUnit := !c.Version.GreaterThan(uv.Version)
		unitECVBelowOrAtConstraint := !uv.ECV.GreaterThan(c.Version)
		return constraintBelowOrAtUnit && unitECVBelowOrAtConstraint
	}
}

func (c *Constraint) String() string {
	if c == nil {
		return "<nil constraint>"
	}
	if c.Kind == ConstraintExact {
		return fmt.Sprintf("%s@=%s", c.Name, c.Version)
	}
	return fmt.Sprintf("%s@%s", c.Name, c.Version)
}
