// Package embedded provides access to the built-in look-and-feel profiles.
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ProfilesFS contains the embedded profile YAML files.
//
//go:embed profiles/*.yaml
var ProfilesFS embed.FS

// ProfileNames returns the names of the embedded profiles, sorted.
func ProfileNames() []string {
	entries, err := fs.ReadDir(ProfilesFS, "profiles")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// ProfileData returns the YAML bytes of an embedded profile.
func ProfileData(name string) ([]byte, error) {
	data, err := ProfilesFS.ReadFile(path.Join("profiles", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("embedded profile %q not found", name)
	}
	return data, nil
}

// HasProfile reports whether name refers to an embedded profile.
func HasProfile(name string) bool {
	_, err := ProfilesFS.ReadFile(path.Join("profiles", name+".yaml"))
	return err == nil
}
