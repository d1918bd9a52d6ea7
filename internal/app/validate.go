package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
)

// Validate loads a manifest and runs registration only: every "Dependency
// already exists" / "Constraint already exists" / malformed
// constraint-syntax error surfaces here without running a search.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	assert.NotEmpty(ctx, req.ManifestPath, "manifest path must be set")

	manifest, err := s.ManifestLoader.Load(req.ManifestPath)
	if err != nil {
		return ValidateResult{}, err
	}

	resolver, depNames, constraintStrings, err := buildRegistry(ctx, manifest)
	if err != nil {
		return ValidateResult{}, err
	}
	for _, raw := range constraintStrings {
		if _, err := resolver.GetConstraintFromString(raw); err != nil {
			return ValidateResult{}, err
		}
	}

	return ValidateResult{
		UnitCount:       len(manifest.Units),
		DependencyCount: len(depNames),
	}, nil
}
