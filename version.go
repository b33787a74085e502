package snipdoc

import "sort"

// VersionMap maps component names to version strings.
// It is loaded once per build and never mutated afterwards, so it is safe
// for concurrent reads.
type VersionMap map[string]string

// Get returns the version for key.
func (m VersionMap) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the component names in sorted order.
func (m VersionMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// VersionLoader loads a version table.
type VersionLoader interface {
	// LoadVersions reads the version table at path.
	// Returns EMISSING if the file cannot be read and EPARSE if it is not
	// a JSON object of strings.
	LoadVersions(path string) (VersionMap, error)
}
