package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSchema(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		wantErr bool
	}{
		{name: "same version", schema: SchemaVersion},
		{name: "newer minor", schema: "1.4.0"},
		{name: "newer patch", schema: "1.0.7"},
		{name: "next major", schema: "2.0.0", wantErr: true},
		{name: "older major", schema: "0.9.0", wantErr: true},
		{name: "garbage", schema: "one", wantErr: true},
		{name: "empty", schema: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSchema(tt.schema)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetFormattedVersion(t *testing.T) {
	original := []string{Version, GitCommit, BuildDate}
	t.Cleanup(func() { SetBuildInfo(original[0], original[1], original[2]) })

	SetBuildInfo("1.2.3", "abcdef1234567", "2026-10-01")
	assert.Equal(t, "lnf v1.2.3, schema 1.0.0, commit abcdef1, built 2026-10-01", GetFormattedVersion())
	assert.False(t, IsDevelopment())

	SetBuildInfo("1.2.3", "unknown", "unknown")
	assert.Equal(t, "lnf v1.2.3, schema 1.0.0", GetFormattedVersion())
	assert.True(t, IsDevelopment())

	SetBuildInfo("not-semver", "unknown", "unknown")
	assert.Contains(t, GetFormattedVersion(), "invalid version")
}

func TestGetInfo(t *testing.T) {
	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, info.Schema)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, GetDetailedVersion(), "Schema: 1.0.0")
}
