package core

import (
	"container/heap"
	"math"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/hashicorp/go-version"

	"pkgresolver/internal/types"
)

// targetUnitName names the synthetic unit version Resolve builds to carry
// the top-level dependency/constraint ask through the same propagation and
// search machinery used for every other unit version. It is never a real
// package name a manifest can register.
const targetUnitName = "__resolve_target__"

// Resolve finds a set of unit versions — at most one per named package —
// satisfying every dependency in depNames and every constraint in
// constraints, transitively, at minimum cost under opts. initialChoices
// seeds the search with unit versions already committed (e.g. from a
// previous partial resolve); pass an empty types.ChoiceList if there are
// none.
func (r *Resolver) Resolve(
	depNames []string,
	constraints types.ConstraintsList,
	initialChoices types.ChoiceList,
	opts types.SolveOptions,
) (types.Solution, error) {
	opts = opts.Fill()

	zero, err := version.NewVersion("0.0.0")
	if err != nil {
		return types.Solution{}, err
	}
	target := types.NewUnitVersion(targetUnitName, zero, zero)
	for _, name := range depNames {
		if err := target.AddDependency(name); err != nil {
			return types.Solution{}, err
		}
	}
	var addConstraintErr error
	constraints.Each(func(c *types.Constraint) {
		if addConstraintErr != nil {
			return
		}
		addConstraintErr = target.AddConstraint(c)
	})
	if addConstraintErr != nil {
		return types.Solution{}, addConstraintErr
	}

	start, err := r.propagateExactTransDeps(target, types.DependenciesList{}, types.ConstraintsList{}, initialChoices.Push(target))
	if err != nil {
		return types.Solution{}, err
	}
	start.Choices = start.Choices.Remove(targetUnitName)

	if opts.StopAfterFirstPropagation {
		return types.Solution{
			Choices: start.Choices.Values(),
			Cost:    opts.CostFunction(start.Choices.Values()),
		}, nil
	}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &queueItem{
		state:    start,
		priority: opts.CombineCostFunction(opts.CostFunction(start.Choices.Values()), opts.EstimateCostFunction(start)),
	})

	var lastDeadEnd error
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*queueItem)
		if math.IsInf(item.priority, 1) {
			break
		}
		if item.state.IsTerminal() {
			return types.Solution{
				Choices: item.state.Choices.Values(),
				Cost:    opts.CostFunction(item.state.Choices.Values()),
			}, nil
		}

		neighbors, err := r.stateNeighbors(item.state)
		if err != nil {
			if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
				lastDeadEnd = err
				continue
			}
			return types.Solution{}, err
		}

		for _, n := range neighbors {
			priority := opts.CombineCostFunction(opts.CostFunction(n.Choices.Values()), opts.EstimateCostFunction(n))
			heap.Push(pq, &queueItem{state: n, priority: priority})
		}
	}

	if lastDeadEnd != nil {
		return types.Solution{}, lastDeadEnd
	}
	return types.Solution{}, errUnresolvable()
}
