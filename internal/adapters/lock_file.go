package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkgresolver/internal/ports"
	"pkgresolver/internal/types"
)

type lockDocument struct {
	Packages map[string]string `yaml:"packages"`
	Cost     float64           `yaml:"cost"`
}

// LockFileAdapter writes a resolved Solution as a YAML document of
// name-to-version pairs plus the resolution's total cost, grounded on the
// teacher's output_file.go writer pattern (one adapter per artifact,
// error-wrapped with errbuilder).
type LockFileAdapter struct{}

func NewLockFileAdapter() LockFileAdapter { return LockFileAdapter{} }

func (LockFileAdapter) WriteLock(path string, solution types.Solution) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lock output path is empty")
	}
	doc := lockDocument{Packages: map[string]string{}, Cost: solution.Cost}
	for _, uv := range solution.Choices {
		doc.Packages[uv.Name] = uv.Version.String()
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode lock file").
			WithCause(err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write lock file %s", path)).
			WithCause(err)
	}
	return nil
}

var _ ports.LockWriterPort = LockFileAdapter{}
