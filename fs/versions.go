package fs

import "github.com/fwojciec/snipdoc"

// Ensure VersionLoader implements snipdoc.VersionLoader at compile time.
var _ snipdoc.VersionLoader = (*VersionLoader)(nil)

// VersionLoader reads version tables from JSON files.
type VersionLoader struct{}

// NewVersionLoader creates a new VersionLoader.
func NewVersionLoader() *VersionLoader {
	return &VersionLoader{}
}

// LoadVersions reads the version table at path.
func (l *VersionLoader) LoadVersions(path string) (snipdoc.VersionMap, error) {
	return LoadVersions(path)
}

// LoadVersions reads a JSON object mapping component names to version
// strings and returns it unchanged.
func LoadVersions(path string) (snipdoc.VersionMap, error) {
	table, err := readTable(path, "version")
	if err != nil {
		return nil, err
	}
	return snipdoc.VersionMap(table), nil
}
