package ports

// ManifestUnit is one registered (name, version) entry of a manifest
// file: its earliest-compatible-version baseline, the packages it
// depends on, and the constraints it imposes on them.
type ManifestUnit struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	ECV          string   `yaml:"ecv"`
	Dependencies []string `yaml:"dependencies"`
	Constraints  []string `yaml:"constraints"`
}

// ManifestResolve is the top-level ask a manifest carries alongside its
// unit registrations: which packages to resolve, any constraints on the
// resolution itself, and preferred versions for the "pinned" cost policy.
type ManifestResolve struct {
	Dependencies []string `yaml:"dependencies"`
	Constraints  []string `yaml:"constraints"`
	Prefer       []string `yaml:"prefer"`
}

// Manifest is the full registry-plus-ask a ManifestPort loads.
type Manifest struct {
	Units   []ManifestUnit  `yaml:"units"`
	Resolve ManifestResolve `yaml:"resolve"`
}

// ManifestPort loads a Manifest from wherever it lives. ManifestFileAdapter
// is the only implementation: a local YAML file.
type ManifestPort interface {
	Load(path string) (Manifest, error)
}
