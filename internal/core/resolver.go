// Package core implements the dependency resolution engine: the Resolver
// registry (interning of UnitVersions and Constraints), constraint and
// version parsing, exact-constraint propagation, and the A*-style search
// driver. The package is side-effect free — no I/O, no logging — so it can
// be exercised directly from tests and wrapped by internal/app for the CLI.
package core

import (
	"fmt"

	"github.com/hashicorp/go-version"

	"pkgresolver/internal/types"
)

// Resolver is the registry of known UnitVersions and interned Constraints.
// A single Resolver is built once per resolve run and never shared across
// concurrent resolves that also register new unit versions (see §5).
type Resolver struct {
	unitsVersions    map[string][]*types.UnitVersion
	unitsVersionsMap map[string]*types.UnitVersion
	latestVersion    map[string]*version.Version
	constraints      map[string]*types.Constraint

	exactTransitiveCache map[*types.UnitVersion]types.ConstraintsList
}

// NewResolver returns an empty registry.
func NewResolver() *Resolver {
	return &Resolver{
		unitsVersions:        map[string][]*types.UnitVersion{},
		unitsVersionsMap:     map[string]*types.UnitVersion{},
		latestVersion:        map[string]*version.Version{},
		constraints:          map[string]*types.Constraint{},
		exactTransitiveCache: map[*types.UnitVersion]types.ConstraintsList{},
	}
}

// AddUnitVersion registers uv. Registering the same (name, version) twice
// is idempotent — the first registration wins and later calls are no-ops,
// matching the spec's "stable identity" interning guarantee.
func (r *Resolver) AddUnitVersion(uv *types.UnitVersion) {
	key := uv.String()
	if _, exists := r.unitsVersionsMap[key]; exists {
		return
	}
	r.unitsVersionsMap[key] = uv
	r.unitsVersions[uv.Name] = append(r.unitsVersions[uv.Name], uv)
	if latest, ok := r.latestVersion[uv.Name]; !ok || uv.Version.GreaterThan(latest) {
		r.latestVersion[uv.Name] = uv.Version
	}
}

// UnitVersionsFor returns every registered version of name, in
// registration order.
func (r *Resolver) UnitVersionsFor(name string) []*types.UnitVersion {
	return r.unitsVersions[name]
}

// LatestVersion returns the greatest registered version of name, or nil
// if name has no registered unit versions.
func (r *Resolver) LatestVersion(name string) *version.Version {
	return r.latestVersion[name]
}

// GetConstraint interns a Constraint for (name, versionConstraint): two
// calls with the same pair return the same pointer, so Constraint equality
// in every persistent container reduces to pointer equality.
func (r *Resolver) GetConstraint(name string, versionConstraint string) (*types.Constraint, error) {
	key := name + "\x00" + versionConstraint
	if c, ok := r.constraints[key]; ok {
		return c, nil
	}
	kind, rawVersion, err := ParseVersionConstraint(versionConstraint)
	if err != nil {
		return nil, err
	}
	v, err := ParseVersion(rawVersion)
	if err != nil {
		return nil, err
	}
	c := &types.Constraint{Name: name, Kind: kind, Version: v}
	r.constraints[key] = c
	return c, nil
}

// GetConstraintFromString interns a Constraint from a combined
// "name@version" / "name@=version" string, as used for the CLI's
// --prefer flag and manifest unit constraints.
func (r *Resolver) GetConstraintFromString(raw string) (*types.Constraint, error) {
	name, versionConstraint, err := ParseConstraintString(raw)
	if err != nil {
		return nil, err
	}
	return r.GetConstraint(name, versionConstraint)
}

// getSatisfyingUnitVersion resolves a constraint to a concrete unit
// version: for an exact constraint, the single matching registration; for
// an at-least constraint, the first registered version (in registration
// order) that satisfies it. Returns (nil, nil) — not an error — when no
// registered version satisfies c; callers decide whether that is fatal.
func (r *Resolver) getSatisfyingUnitVersion(c *types.Constraint) (*types.UnitVersion, error) {
	if c.Kind == types.ConstraintExact {
		uv, ok := r.unitsVersionsMap[fmt.Sprintf("%s@%s", c.Name, c.Version)]
		if !ok {
			return nil, nil
		}
		return uv, nil
	}
	for _, uv := range r.unitsVersions[c.Name] {
		if c.IsSatisfied(uv) {
			return uv, nil
		}
	}
	return nil, nil
}
