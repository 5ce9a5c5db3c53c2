package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Manifest is the subset of a package.json the site configuration reads
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ReadManifest loads a package.json-style dependency manifest
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &manifest, nil
}

// DependencyVersion returns the declared version range of name, looking at
// runtime dependencies before dev dependencies.
func (m *Manifest) DependencyVersion(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	if v, ok := m.Dependencies[name]; ok {
		return v, true
	}
	if v, ok := m.DevDependencies[name]; ok {
		return v, true
	}
	return "", false
}

// Longer operators first so ">=" is not read as ">"
var rangeOperators = []string{">=", "<=", "^", "~", "=", ">", "<"}

// StripRangeOperator removes a single leading range operator from a
// declared version, e.g. "^3.0.0" becomes "3.0.0".
func StripRangeOperator(version string) string {
	version = strings.TrimSpace(version)
	for _, op := range rangeOperators {
		if strings.HasPrefix(version, op) {
			return strings.TrimSpace(strings.TrimPrefix(version, op))
		}
	}
	return version
}

// GeneratorVersion resolves the generator version from the manifest.
// The second return value is false when the dependency is not declared.
func (m *Manifest) GeneratorVersion() (string, bool) {
	declared, ok := m.DependencyVersion(GeneratorPackage)
	if !ok {
		return UnknownVersion, false
	}
	version := StripRangeOperator(declared)
	if version == "" {
		return UnknownVersion, false
	}
	return version, true
}
