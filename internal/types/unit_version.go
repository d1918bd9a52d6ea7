package types

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// UnitVersion is one registered (name, version) pair together with the
// dependency names and constraints it declares. Once built, a UnitVersion is
// treated as immutable by the resolver: AddDependency/AddConstraint are
// registration-time setup calls, not runtime mutation.
type UnitVersion struct {
	Name         string
	Version      *version.Version
	ECV          *version.Version
	dependencies DependenciesList
	constraints  ConstraintsList
}

// NewUnitVersion builds a UnitVersion with no dependencies or constraints
// yet. ecv (earliest compatible version) must be no greater than v; callers
// that don't track a separate earliest-compatible baseline pass v itself.
func NewUnitVersion(name string, v *version.Version, ecv *version.Version) *UnitVersion {
	return &UnitVersion{
		Name:    name,
		Version: v,
		ECV:     ecv,
	}
}

// AddDependency registers name as a package this unit version requires.
// Fails if the name was already added.
func (u *UnitVersion) AddDependency(name string) error {
	if u.dependencies.Contains(name) {
		return errDependencyExists(name)
	}
	u.dependencies = u.dependencies.Push(name)
	return nil
}

// AddConstraint registers c as a restriction this unit version imposes.
// Fails if an identical (interned) constraint was already added.
func (u *UnitVersion) AddConstraint(c *Constraint) error {
	if u.constraints.Contains(c) {
		return errConstraintExists(c)
	}
	u.constraints = u.constraints.Push(c)
	return nil
}

func (u *UnitVersion) Dependencies() DependenciesList { return u.dependencies }
func (u *UnitVersion) Constraints() ConstraintsList   { return u.constraints }

func (u *UnitVersion) String() string {
	if u == nil {
		return "<nil unit version>"
	}
	return fmt.Sprintf("%s@%s", u.Name, u.Version)
}
