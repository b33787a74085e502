// Package fs provides file-based access to snippet files, version tables
// and expanded pages.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/snipdoc"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// readTable reads a JSON object of string values from path.
// kind names the file in error messages.
func readTable(path, kind string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, snipdoc.Wrapf(err, snipdoc.EMISSING, "cannot read %s file %s: %v", kind, path, err)
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, snipdoc.Wrapf(err, snipdoc.EPARSE, "invalid %s file %s: %v", kind, path, err)
	}
	if table == nil {
		return nil, snipdoc.Errorf(snipdoc.EPARSE, "invalid %s file %s: expected a JSON object", kind, path)
	}
	return table, nil
}

// resolve joins a relative path onto baseDir. Absolute paths are returned as-is.
func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
