package types

// CostFunction scores the choices made so far (lower is better). Called
// with the unit versions chosen on the path to a state.
type CostFunction func(choices []*UnitVersion) float64

// EstimateCostFunction estimates the remaining cost to reach a terminal
// state from state (lower is better; must never overestimate for the
// search to behave as A*).
type EstimateCostFunction func(state SearchState) float64

// CombineCostFunction merges an actual cost and a remaining-cost estimate
// into the priority used to order the search frontier.
type CombineCostFunction func(cost, estimate float64) float64

// SolveOptions configures a single Resolve call. Resolve fills any nil
// function field from DefaultSolveOptions (see Fill), so the zero value
// behaves like DefaultSolveOptions.
type SolveOptions struct {
	CostFunction              CostFunction
	EstimateCostFunction      EstimateCostFunction
	CombineCostFunction       CombineCostFunction
	StopAfterFirstPropagation bool
}

// DefaultSolveOptions returns options with a zero cost/estimate (every
// solution is equally good; every state ties on priority, so the search
// expands the state with the most choices first) and the default additive
// combine function.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		CostFunction:         func(choices []*UnitVersion) float64 { return 0 },
		EstimateCostFunction: func(state SearchState) float64 { return 0 },
		CombineCostFunction:  func(cost, estimate float64) float64 { return cost + estimate },
	}
}

// Fill replaces any nil field in o with DefaultSolveOptions' corresponding
// field, so callers may supply a partially populated SolveOptions.
func (o SolveOptions) Fill() SolveOptions {
	def := DefaultSolveOptions()
	if o.CostFunction == nil {
		o.CostFunction = def.CostFunction
	}
	if o.EstimateCostFunction == nil {
		o.EstimateCostFunction = def.EstimateCostFunction
	}
	if o.CombineCostFunction == nil {
		o.CombineCostFunction = def.CombineCostFunction
	}
	return o
}

// Solution is the outcome of a successful Resolve: the chosen unit
// versions, in the order they were settled, and the total cost of the
// path that produced them.
type Solution struct {
	Choices []*UnitVersion
	Cost    float64
}
