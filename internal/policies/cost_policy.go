// Package policies provides named, pluggable cost functions the CLI
// selects by flag, generalizing the teacher's PackagingPolicy pattern
// (ordered pattern match over package names, first/most-specific match
// wins) from "which packaging group does this package belong to" to "how
// expensive is choosing this version".
package policies

import (
	"pkgresolver/internal/core"
	"pkgresolver/internal/types"
)

// stablePenalty is the fixed cost added for choosing a pre-release
// version under the "stable" policy.
const stablePenalty = 1000.0

// pinnedMismatchCost is the fixed cost added, under the "pinned" policy,
// for choosing a package that has a preference but not the preferred
// version.
const pinnedMismatchCost = 1.0

// registry is the subset of *core.Resolver the cost policies need:
// enough to rank a chosen version against its siblings without depending
// on the whole resolver surface.
type registry interface {
	UnitVersionsFor(name string) []*types.UnitVersion
}

// NewNewestPolicy costs each choice by its registration-order distance
// from the newest registered version of its package (zero for the
// newest), biasing the search toward the latest available version of
// every package. The estimate is always zero, which is admissible: no
// partial state can cost less than the zero minimum.
func NewNewestPolicy(reg registry) types.SolveOptions {
	return types.SolveOptions{
		CostFunction:         newestCost(reg),
		EstimateCostFunction: func(types.SearchState) float64 { return 0 },
		CombineCostFunction:  sumCombine,
	}
}

// NewStablePolicy behaves like NewNewestPolicy but adds stablePenalty for
// any chosen version carrying a pre-release segment.
func NewStablePolicy(reg registry) types.SolveOptions {
	newest := newestCost(reg)
	cost := func(choices []*types.UnitVersion) float64 {
		total := newest(choices)
		for _, uv := range choices {
			if core.IsPrerelease(uv.Version) {
				total += stablePenalty
			}
		}
		return total
	}
	return types.SolveOptions{
		CostFunction:         cost,
		EstimateCostFunction: func(types.SearchState) float64 { return 0 },
		CombineCostFunction:  sumCombine,
	}
}

// NewPinnedPolicy costs a choice zero if it matches preferred[name]
// exactly, pinnedMismatchCost otherwise; packages with no entry in
// preferred are free. Mirrors the teacher's SetPreferred-style bias
// (seen in toitlang-tpkg's solver) toward previously chosen versions,
// here driven by the CLI's repeatable --prefer flag.
func NewPinnedPolicy(preferred map[string]string) types.SolveOptions {
	cost := func(choices []*types.UnitVersion) float64 {
		var total float64
		for _, uv := range choices {
			want, ok := preferred[uv.Name]
			if !ok {
				continue
			}
			if uv.Version.String() != want {
				total += pinnedMismatchCost
			}
		}
		return total
	}
	return types.SolveOptions{
		CostFunction:         cost,
		EstimateCostFunction: func(types.SearchState) float64 { return 0 },
		CombineCostFunction:  sumCombine,
	}
}

func newestCost(reg registry) types.CostFunction {
	return func(choices []*types.UnitVersion) float64 {
		var total float64
		for _, uv := range choices {
			total += distanceFromNewest(reg, uv)
		}
		return total
	}
}

func distanceFromNewest(reg registry, uv *types.UnitVersion) float64 {
	versions := reg.UnitVersionsFor(uv.Name)
	newest, pos := -1, -1
	for i, v := range versions {
		if newest < 0 || v.Version.GreaterThan(versions[newest].Version) {
			newest = i
		}
		if v == uv {
			pos = i
		}
	}
	if pos < 0 {
		return 0
	}
	distance := newest - pos
	if distance < 0 {
		distance = -distance
	}
	return float64(distance)
}

func sumCombine(cost, estimate float64) float64 { return cost + estimate }
