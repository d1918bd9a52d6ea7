package app

// ValidateRequest names the manifest to register without searching.
type ValidateRequest struct {
	ManifestPath string
}

// ValidateResult reports what registration found, for a quick sanity
// check of a large manifest before a full resolve.
type ValidateResult struct {
	UnitCount       int
	DependencyCount int
}

// ResolveRequest names the manifest to resolve and how to resolve it.
type ResolveRequest struct {
	ManifestPath         string
	Policy               string
	Prefer               []string
	LockPath             string
	StopAfterPropagation bool
}

// ResolvedPackage is one entry of a resolution's output.
type ResolvedPackage struct {
	Name    string
	Version string
}

// ResolveResult is the outcome of a successful resolve.
type ResolveResult struct {
	Packages []ResolvedPackage
	Cost     float64
	LockPath string
}

// InspectRequest names the manifest to report registry stats for.
type InspectRequest struct {
	ManifestPath string
}

// PackageSummary reports the registered versions of one package name.
type PackageSummary struct {
	Name         string
	VersionCount int
}

// InspectResult reports registry statistics for debugging a large
// manifest, generalizing the teacher's inspect command.
type InspectResult struct {
	UnitCount       int
	PackageCount    int
	ConstraintCount int
	Packages        []PackageSummary
}
