package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"pkgresolver/internal/core"
	"pkgresolver/internal/ports"
	"pkgresolver/internal/types"
)

// buildRegistry registers every unit a manifest declares against a fresh
// resolver and returns it alongside the top-level resolve ask: the
// dependency names to resolve and the raw constraint strings on the
// resolution itself, which the caller interns. Registration failures
// (duplicate dependency/constraint, malformed unit constraint syntax)
// surface here before any search is attempted.
func buildRegistry(ctx context.Context, manifest ports.Manifest) (*core.Resolver, []string, []string, error) {
	resolver := core.NewResolver()
	logger := log.Ctx(ctx)

	for _, unit := range manifest.Units {
		v, err := core.ParseVersion(unit.Version)
		if err != nil {
			return nil, nil, nil, err
		}
		ecvRaw := unit.ECV
		if ecvRaw == "" {
			ecvRaw = unit.Version
		}
		ecv, err := core.ParseVersion(ecvRaw)
		if err != nil {
			return nil, nil, nil, err
		}

		uv := types.NewUnitVersion(unit.Name, v, ecv)
		for _, dep := range unit.Dependencies {
			if err := uv.AddDependency(dep); err != nil {
				return nil, nil, nil, err
			}
		}
		for _, raw := range unit.Constraints {
			c, err := resolver.GetConstraintFromString(raw)
			if err != nil {
				return nil, nil, nil, err
			}
			if err := uv.AddConstraint(c); err != nil {
				return nil, nil, nil, err
			}
		}
		resolver.AddUnitVersion(uv)
		logger.Debug().Str("name", unit.Name).Str("version", unit.Version).Msg("registered unit version")
	}

	return resolver, manifest.Resolve.Dependencies, manifest.Resolve.Constraints, nil
}

// preferredVersions merges the manifest's resolve.prefer entries with any
// CLI-supplied --prefer overrides (overrides win) into a name-to-version
// map for the "pinned" cost policy.
func preferredVersions(manifest ports.Manifest, extra []string) (map[string]string, error) {
	preferred := map[string]string{}
	apply := func(raw string) error {
		name, versionConstraint, err := core.ParseConstraintString(raw)
		if err != nil {
			return err
		}
		preferred[name] = versionConstraint
		return nil
	}
	for _, raw := range manifest.Resolve.Prefer {
		if err := apply(raw); err != nil {
			return nil, err
		}
	}
	for _, raw := range extra {
		if err := apply(raw); err != nil {
			return nil, err
		}
	}
	return preferred, nil
}
