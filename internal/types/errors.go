package types

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// errDependencyExists and errConstraintExists surface the two registration
// invariants of UnitVersion: a unit version's dependency and constraint
// lists never carry a duplicate name/constraint.
func errDependencyExists(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf("Dependency already exists — %s", name))
}

func errConstraintExists(c *Constraint) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(fmt.Sprintf("Constraint already exists — %s", c))
}
