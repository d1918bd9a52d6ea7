package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersionOrdering(t *testing.T) {
	v1, err := ParseVersion("1.2.3")
	require.NoError(t, err)
	v2, err := ParseVersion("1.10.0")
	require.NoError(t, err)
	require.True(t, v1.LessThan(v2))
}

func TestParseVersionRejectsEmpty(t *testing.T) {
	_, err := ParseVersion("")
	require.Error(t, err)
}

func TestParseVersionRejectsInvalid(t *testing.T) {
	_, err := ParseVersion("not-a-version-!!")
	require.Error(t, err)
}

func TestIsPrerelease(t *testing.T) {
	stable, err := ParseVersion("1.0.0")
	require.NoError(t, err)
	require.False(t, IsPrerelease(stable))

	rc, err := ParseVersion("1.0.0-rc1")
	require.NoError(t, err)
	require.True(t, IsPrerelease(rc))
}
