package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgresolver/internal/types"
)

// errNoSatisfyingUnitVersion is fatal: it means the registry is
// inconsistent — an exact constraint reached during propagation names a
// version that is not registered — and propagation cannot continue.
func errNoSatisfyingUnitVersion(c *types.Constraint) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("No unit version was found for the constraint — %s", c))
}

// errCannotChoose is a local, recorded dead end: no registered version of
// name survives the constraints already in force at this search state.
// The search backtracks past it; it is not fatal.
func errCannotChoose(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("Cannot choose satisfying versions of package — %s", name))
}

// errNoSensibleNeighbor is a local, recorded dead end: every surviving
// candidate version of name produces a state that immediately violates
// its own committed constraints once propagated.
func errNoSensibleNeighbor(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("None of the versions produce a sensible result — %s", name))
}

// errUnresolvable is returned when the search frontier is exhausted
// without reaching a terminal state and no more specific dead end was
// recorded.
func errUnresolvable() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("Couldn't resolve")
}
