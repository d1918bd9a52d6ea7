package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkgresolver/internal/ports"
)

// ManifestFileAdapter reads a Manifest from a local YAML file, grounded
// on the teacher's one-adapter-per-artifact style (output_file.go).
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter { return ManifestFileAdapter{} }

func (ManifestFileAdapter) Load(path string) (ports.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ports.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read manifest file").
			WithCause(err)
	}
	var manifest ports.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return ports.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest file").
			WithCause(err)
	}
	return manifest, nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}
