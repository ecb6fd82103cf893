// Package version provides build and wire-schema version information.
// Both follow semantic versioning; a child accepts any table whose schema shares its major version.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags
var (
	// Version is the semantic version of the application
	Version = "0.1.0"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// SchemaVersion is the version of the table wire format this build produces.
const SchemaVersion = "1.0.0"

// schemaConstraint accepts any schema with the same major version as SchemaVersion.
var schemaConstraint = mustConstraint("^" + SchemaVersion)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(fmt.Sprintf("invalid schema constraint %q: %v", c, err))
	}
	return constraint
}

// Info represents comprehensive version information
type Info struct {
	Version   string          `json:"version"`
	Schema    string          `json:"schema"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// GetInfo returns comprehensive version information
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:   Version,
		Schema:    SchemaVersion,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SemVer:    sv,
	}, nil
}

// GetFormattedVersion returns a one-line version string
func GetFormattedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("lnf v%s (invalid version)", Version)
	}

	parts := []string{fmt.Sprintf("lnf v%s", info.Version), fmt.Sprintf("schema %s", info.Schema)}

	if info.GitCommit != "unknown" && info.GitCommit != "" {
		shortCommit := info.GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}

	if info.BuildDate != "unknown" && info.BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", info.BuildDate))
	}

	return strings.Join(parts, ", ")
}

// GetDetailedVersion returns detailed version information for debugging
func GetDetailedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("lnf v%s (error: %v)", Version, err)
	}

	lines := []string{
		fmt.Sprintf("lnf v%s", info.Version),
		fmt.Sprintf("Schema: %s", info.Schema),
		fmt.Sprintf("Git Commit: %s", info.GitCommit),
		fmt.Sprintf("Build Date: %s", info.BuildDate),
		fmt.Sprintf("Go Version: %s", info.GoVersion),
		fmt.Sprintf("Platform: %s", info.Platform),
	}
	return strings.Join(lines, "\n")
}

// CheckSchema returns an error when a peer's table schema cannot be read by this build.
func CheckSchema(schema string) error {
	sv, err := semver.NewVersion(schema)
	if err != nil {
		return fmt.Errorf("invalid schema version '%s': %w", schema, err)
	}
	if !schemaConstraint.Check(sv) {
		return fmt.Errorf("unsupported schema version %s (this build reads %s)", schema, schemaConstraint)
	}
	return nil
}

// IsDevelopment returns true if this appears to be a development build
func IsDevelopment() bool {
	return GitCommit == "unknown" || BuildDate == "unknown"
}

// SetBuildInfo sets build information (used for testing)
func SetBuildInfo(version, gitCommit, buildDate string) {
	Version = version
	GitCommit = gitCommit
	BuildDate = buildDate
}
