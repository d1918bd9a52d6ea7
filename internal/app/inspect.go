package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
)

// Inspect loads a manifest and reports registry statistics — package
// count, version count per package, interned constraint count — useful
// for sanity-checking a large manifest without running a search,
// generalizing the teacher's inspect command from reading lock/manifest
// output files to reporting on the registry directly.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	assert.NotEmpty(ctx, req.ManifestPath, "manifest path must be set")

	manifest, err := s.ManifestLoader.Load(req.ManifestPath)
	if err != nil {
		return InspectResult{}, err
	}

	resolver, _, _, err := buildRegistry(ctx, manifest)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{
		UnitCount:       resolver.UnitVersionCount(),
		ConstraintCount: resolver.ConstraintCount(),
	}
	for _, name := range resolver.PackageNames() {
		result.Packages = append(result.Packages, PackageSummary{
			Name:         name,
			VersionCount: len(resolver.UnitVersionsFor(name)),
		})
	}
	result.PackageCount = len(result.Packages)
	return result, nil
}
