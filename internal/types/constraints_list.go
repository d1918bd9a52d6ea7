package types

// ConstraintsList is a persistent set of interned *Constraint values.
// Membership is by pointer identity: since Constraint is interned by the
// Resolver registry, two Constraints built from the same (name,
// version-constraint string) are the same pointer, so Contains/Push behave
// as a semantic set despite comparing pointers.
type ConstraintsList struct {
	items []*Constraint
	seen  map[*Constraint]struct{}
}

func (c ConstraintsList) Len() int { return len(c.items) }

func (c ConstraintsList) IsEmpty() bool { return len(c.items) == 0 }

func (c ConstraintsList) Contains(x *Constraint) bool {
	_, ok := c.seen[x]
	return ok
}

// Push returns a new set with x added, or the receiver unchanged if x is
// already present.
func (c ConstraintsList) Push(x *Constraint) ConstraintsList {
	if c.Contains(x) {
		return c
	}
	items := make([]*Constraint, len(c.items)+1)
	copy(items, c.items)
	items[len(c.items)] = x
	return ConstraintsList{items: items, seen: buildConstraintIndex(items)}
}

func (c ConstraintsList) Union(other ConstraintsList) ConstraintsList {
	result := c
	for _, it := range other.items {
		result = result.Push(it)
	}
	return result
}

func (c ConstraintsList) Each(fn func(*Constraint)) {
	for _, it := range c.items {
		fn(it)
	}
}

// Violated reports whether the set contains any constraint named uv.Name
// that uv does not satisfy.
func (c ConstraintsList) Violated(uv *UnitVersion) bool {
	for _, ct := range c.items {
		if ct.Name == uv.Name && !ct.IsSatisfied(uv) {
			return true
		}
	}
	return false
}

// ExactConstraintsIntersection returns the subset of this set that is
// exact and whose package name appears in deps. Used both to find the
// constraints already in force that pin a package a unit version just
// declared a dependency on, and — applied to a unit version's own
// constraints against its own dependencies — to find the constraints it
// imposes on packages it itself names. The two uses are duals of the same
// filter; see §4.6 propagation.
func (c ConstraintsList) ExactConstraintsIntersection(deps DependenciesList) ConstraintsList {
	var result ConstraintsList
	for _, ct := range c.items {
		if ct.Kind == ConstraintExact && deps.Contains(ct.Name) {
			result = result.Push(ct)
		}
	}
	return result
}

// ExactDependenciesIntersection is the dual-direction alias of
// ExactConstraintsIntersection, used when the set being filtered is a unit
// version's own constraints rather than the ambient in-force set.
func (c ConstraintsList) ExactDependenciesIntersection(deps DependenciesList) ConstraintsList {
	return c.ExactConstraintsIntersection(deps)
}

func buildConstraintIndex(items []*Constraint) map[*Constraint]struct{} {
	seen := make(map[*Constraint]struct{}, len(items))
	for _, it := range items {
		seen[it] = struct{}{}
	}
	return seen
}
