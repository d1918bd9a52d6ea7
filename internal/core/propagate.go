package core

import "pkgresolver/internal/types"

// exactTransitiveConstraints computes, for u, the closure of exact
// constraints reachable by following u's own exact-constraint-on-a-declared
// -dependency chain: u's exact constraints on packages it depends on, plus
// (recursively) the exact constraints those pinned unit versions in turn
// impose on packages they depend on. Memoized per unit version since the
// registry never changes a unit version's dependencies/constraints once
// registered.
func (r *Resolver) exactTransitiveConstraints(u *types.UnitVersion) (types.ConstraintsList, error) {
	if cached, ok := r.exactTransitiveCache[u]; ok {
		return cached, nil
	}

	var result types.ConstraintsList
	seen := map[*types.Constraint]bool{}

	initial := u.Constraints().ExactConstraintsIntersection(u.Dependencies())
	worklist := constraintsToSlice(initial)

	for len(worklist) > 0 {
		c := worklist[0]
		worklist = worklist[1:]
		if seen[c] {
			continue
		}
		seen[c] = true
		result = result.Push(c)

		satisfying, err := r.getSatisfyingUnitVersion(c)
		if err != nil {
			return types.ConstraintsList{}, err
		}
		if satisfying == nil {
			return types.ConstraintsList{}, errNoSatisfyingUnitVersion(c)
		}

		next := satisfying.Constraints().ExactConstraintsIntersection(satisfying.Dependencies())
		next.Each(func(nc *types.Constraint) {
			if !seen[nc] {
				worklist = append(worklist, nc)
			}
		})
	}

	r.exactTransitiveCache[u] = result
	return result, nil
}

// exactTransitiveDependenciesVersions resolves every constraint in
// exactTransitiveConstraints(u) to its concrete unit version.
func (r *Resolver) exactTransitiveDependenciesVersions(u *types.UnitVersion) ([]*types.UnitVersion, error) {
	ec, err := r.exactTransitiveConstraints(u)
	if err != nil {
		return nil, err
	}
	var result []*types.UnitVersion
	var resolveErr error
	ec.Each(func(c *types.Constraint) {
		if resolveErr != nil {
			return
		}
		uv, err := r.getSatisfyingUnitVersion(c)
		if err != nil {
			resolveErr = err
			return
		}
		if uv == nil {
			resolveErr = errNoSatisfyingUnitVersion(c)
			return
		}
		result = append(result, uv)
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return result, nil
}

// inexactTransitiveDependencies returns the package names u still needs a
// general (non-exact-pinned) version chosen for: u's own dependencies plus
// the dependencies of everything exact-transitively forced by u, minus
// whatever already has an exact constraint (and so already has a chosen
// version via exactTransitiveDependenciesVersions).
func (r *Resolver) inexactTransitiveDependencies(u *types.UnitVersion) (types.DependenciesList, error) {
	result := u.Dependencies()

	ec, err := r.exactTransitiveConstraints(u)
	if err != nil {
		return types.DependenciesList{}, err
	}

	var resolveErr error
	ec.Each(func(c *types.Constraint) {
		if resolveErr != nil {
			return
		}
		uv, err := r.getSatisfyingUnitVersion(c)
		if err != nil {
			resolveErr = err
			return
		}
		if uv == nil {
			resolveErr = errNoSatisfyingUnitVersion(c)
			return
		}
		result = result.Union(uv.Dependencies())
	})
	if resolveErr != nil {
		return types.DependenciesList{}, resolveErr
	}

	ec.Each(func(c *types.Constraint) {
		result = result.Remove(c.Name)
	})
	return result, nil
}

// propagateExactTransDeps folds a newly chosen unit version uv into an
// already-propagated search state. It runs a breadth-first closure over
// uv and every unit version forced by exact constraints reachable from it,
// discovering along the way any *new* forced pairings that only become
// visible once uv itself is part of the picture (the "A" and "B"
// intersections below), and enqueueing those for the same treatment.
//
// dependencies, constraints, and choices are the state already propagated
// before uv was added; choices should already include uv (ChoiceList.Push
// is idempotent, so passing it either way is safe).
func (r *Resolver) propagateExactTransDeps(
	uv *types.UnitVersion,
	dependencies types.DependenciesList,
	constraints types.ConstraintsList,
	choices types.ChoiceList,
) (types.SearchState, error) {
	queue := []*types.UnitVersion{uv}
	enqueued := map[string]bool{uv.Name: true}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		choices = choices.Push(u)

		exactDeps, err := r.exactTransitiveDependenciesVersions(u)
		if err != nil {
			return types.SearchState{}, err
		}
		inexactDeps, err := r.inexactTransitiveDependencies(u)
		if err != nil {
			return types.SearchState{}, err
		}

		transitiveConstraints := u.Constraints()
		for _, ev := range exactDeps {
			transitiveConstraints = transitiveConstraints.Union(ev.Constraints())
		}

		dependencies = dependencies.Union(inexactDeps)
		constraints = constraints.Union(transitiveConstraints)
		for _, ev := range exactDeps {
			choices = choices.Push(ev)
		}

		choices.Each(func(c *types.UnitVersion) {
			dependencies = dependencies.Remove(c.Name)
		})

		a := constraints.ExactConstraintsIntersection(u.Dependencies())
		b := u.Constraints().ExactDependenciesIntersection(u.Dependencies())
		newExact := a.Union(b)

		var propErr error
		newExact.Each(func(c *types.Constraint) {
			if propErr != nil {
				return
			}
			satisfying, err := r.getSatisfyingUnitVersion(c)
			if err != nil {
				propErr = err
				return
			}
			if satisfying == nil {
				propErr = errNoSatisfyingUnitVersion(c)
				return
			}
			if !enqueued[satisfying.Name] {
				enqueued[satisfying.Name] = true
				queue = append(queue, satisfying)
			}
		})
		if propErr != nil {
			return types.SearchState{}, propErr
		}
	}

	return types.SearchState{
		Dependencies: dependencies,
		Constraints:  constraints,
		Choices:      choices,
	}, nil
}

func constraintsToSlice(cl types.ConstraintsList) []*types.Constraint {
	var out []*types.Constraint
	cl.Each(func(c *types.Constraint) {
		out = append(out, c)
	})
	return out
}
