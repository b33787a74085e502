package mock

import "github.com/fwojciec/snipdoc"

var _ snipdoc.VersionLoader = (*VersionLoader)(nil)

// VersionLoader is a mock implementation of snipdoc.VersionLoader.
type VersionLoader struct {
	LoadVersionsFn func(path string) (snipdoc.VersionMap, error)
}

func (l *VersionLoader) LoadVersions(path string) (snipdoc.VersionMap, error) {
	return l.LoadVersionsFn(path)
}
