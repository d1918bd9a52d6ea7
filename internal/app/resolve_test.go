package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestResolveAppPicksNewestCompatible(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	manifestPath := filepath.Join(root, "tests", "testdata", "simple.yaml")
	lockPath := filepath.Join(t.TempDir(), "resolved.lock")

	service := NewService()
	result, err := service.Resolve(t.Context(), ResolveRequest{
		ManifestPath: manifestPath,
		LockPath:     lockPath,
	})
	require.NoError(t, err)
	require.FileExists(t, lockPath)

	packages := map[string]string{}
	for _, p := range result.Packages {
		packages[p.Name] = p.Version
	}
	if diff := cmp.Diff("1.0.0", packages["A"]); diff != "" {
		t.Fatalf("unexpected version for A (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("1.2.3", packages["B"]); diff != "" {
		t.Fatalf("unexpected version for B (-want +got):\n%s", diff)
	}
}

func TestResolveAppUnsatisfiable(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	manifestPath := filepath.Join(root, "tests", "testdata", "unsatisfiable.yaml")

	service := NewService()
	_, err = service.Resolve(t.Context(), ResolveRequest{ManifestPath: manifestPath})
	require.Error(t, err)
}

func TestResolveAppRejectsUnknownPolicy(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	manifestPath := filepath.Join(root, "tests", "testdata", "simple.yaml")

	service := NewService()
	_, err = service.Resolve(t.Context(), ResolveRequest{ManifestPath: manifestPath, Policy: "bogus"})
	require.Error(t, err)
}
