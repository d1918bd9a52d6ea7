package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestInspectApp(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	manifestPath := filepath.Join(root, "tests", "testdata", "simple.yaml")

	service := NewService()
	result, err := service.Inspect(t.Context(), InspectRequest{ManifestPath: manifestPath})
	require.NoError(t, err)

	if diff := cmp.Diff(3, result.UnitCount); diff != "" {
		t.Fatalf("unexpected unit count (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, result.PackageCount); diff != "" {
		t.Fatalf("unexpected package count (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(1, result.ConstraintCount); diff != "" {
		t.Fatalf("unexpected constraint count (-want +got):\n%s", diff)
	}
}
