package core

import "pkgresolver/internal/types"

// stateNeighbors expands state by choosing a concrete version for one
// pending dependency name (the first in registration order) and
// propagating the consequences of each surviving candidate. It returns one
// successor state per candidate version that does not immediately violate
// its own committed constraints.
//
// A CodeNotFound error means this branch of the search is a dead end:
// either no registered version of name survives the constraints already
// in force, or every survivor's propagated state turns out inconsistent.
// The caller records it and moves on. Any other error comes from
// propagation (an exact constraint with no registered version) and is
// fatal to the whole resolve.
func (r *Resolver) stateNeighbors(state types.SearchState) ([]types.SearchState, error) {
	name, ok := state.Dependencies.Peek()
	if !ok {
		return nil, nil
	}
	remainingDeps := state.Dependencies.Remove(name)

	var candidates []*types.UnitVersion
	for _, uv := range r.unitsVersions[name] {
		if !state.Constraints.Violated(uv) {
			candidates = append(candidates, uv)
		}
	}
	if len(candidates) == 0 {
		return nil, errCannotChoose(name)
	}

	var neighbors []types.SearchState
	for _, uv := range candidates {
		next, err := r.propagateExactTransDeps(uv, remainingDeps, state.Constraints, state.Choices.Push(uv))
		if err != nil {
			return nil, err
		}

		valid := true
		next.Choices.Each(func(c *types.UnitVersion) {
			if next.Constraints.Violated(c) {
				valid = false
			}
		})
		if !valid {
			continue
		}
		neighbors = append(neighbors, next)
	}

	if len(neighbors) == 0 {
		return nil, errNoSensibleNeighbor(name)
	}
	return neighbors, nil
}
