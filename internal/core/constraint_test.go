package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"pkgresolver/internal/types"
)

func TestParseVersionConstraint(t *testing.T) {
	cases := []struct {
		name       string
		raw        string
		wantKind   types.ConstraintKind
		wantRawVer string
		wantErr    bool
	}{
		{name: "exact", raw: "=1.2.3", wantKind: types.ConstraintExact, wantRawVer: "1.2.3"},
		{name: "exact with spaces", raw: " = 1.2.3 ", wantKind: types.ConstraintExact, wantRawVer: "1.2.3"},
		{name: "at least", raw: "1.2.3", wantKind: types.ConstraintAtLeast, wantRawVer: "1.2.3"},
		{name: "empty", raw: "", wantErr: true},
		{name: "bare equals", raw: "=", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, raw, err := ParseVersionConstraint(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.wantKind, kind); diff != "" {
				t.Fatalf("unexpected kind (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantRawVer, raw); diff != "" {
				t.Fatalf("unexpected version (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConstraintString(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		wantName    string
		wantVersion string
		wantErr     bool
	}{
		{name: "exact", raw: "B@=1.2.3", wantName: "B", wantVersion: "=1.2.3"},
		{name: "at least", raw: "B@1.2.3", wantName: "B", wantVersion: "1.2.3"},
		{name: "missing at sign", raw: "B1.2.3", wantErr: true},
		{name: "missing version", raw: "B@", wantErr: true},
		{name: "missing name", raw: "@1.2.3", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, version, err := ParseConstraintString(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.wantName, name); diff != "" {
				t.Fatalf("unexpected name (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantVersion, version); diff != "" {
				t.Fatalf("unexpected version (-want +got):\n%s", diff)
			}
		})
	}
}
