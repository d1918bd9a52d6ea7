package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pkgresolver/tests/testutil"
)

func TestResolveCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	lockPath := filepath.Join(t.TempDir(), "resolved.lock")

	cmd := exec.Command("go", "run", "./cmd/pkgresolver", "resolve",
		"--manifest", "tests/testdata/simple.yaml",
		"--policy", "newest",
		"--lock", lockPath,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, lockPath)
	require.Contains(t, string(out), "A@1.0.0")
	require.Contains(t, string(out), "B@1.2.3")
}

func TestResolveCommandE2EUnsatisfiable(t *testing.T) {
	root := testutil.RepoRoot(t)
	bin := filepath.Join(t.TempDir(), "pkgresolver")

	// Build and run the binary directly: `go run` reports any non-zero
	// program exit as its own exit status 1, hiding the code under test.
	build := exec.Command("go", "build", "-o", bin, "./cmd/pkgresolver")
	build.Dir = root
	build.Env = append(os.Environ(), "GO111MODULE=on")
	buildOut, err := build.CombinedOutput()
	require.NoError(t, err, string(buildOut))

	cmd := exec.Command(bin, "resolve",
		"--manifest", "tests/testdata/unsatisfiable.yaml",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.Error(t, err, string(out))

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 3, exitErr.ExitCode())
}

func TestValidateCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/pkgresolver", "validate",
		"--manifest", "tests/testdata/simple.yaml",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "units:")
}
