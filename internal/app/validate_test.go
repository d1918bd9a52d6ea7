package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestValidateApp(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	manifestPath := filepath.Join(root, "tests", "testdata", "simple.yaml")

	service := NewService()
	result, err := service.Validate(t.Context(), ValidateRequest{ManifestPath: manifestPath})
	require.NoError(t, err)
	if diff := cmp.Diff(1, result.DependencyCount); diff != "" {
		t.Fatalf("unexpected dependency count (-want +got):\n%s", diff)
	}
}
