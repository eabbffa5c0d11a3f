// Package fs provides the file system queries the build engine needs:
// directory listings, modification times and path helpers.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cbuild/internal/core/domain"
)

// ListVisible returns the names of the visible (not dot-prefixed) regular
// files in dir, in directory order. Subdirectories are skipped.
func ListVisible(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Mtime returns the last-modified time of path in seconds since the epoch.
func Mtime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.ModTime().Unix(), nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dir (and any missing parents) if it does not exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, domain.DirPerm)
}

// ReplaceExt replaces the extension of name with newExt. newExt must
// include the leading dot. A name without an extension gets newExt
// appended.
func ReplaceExt(name, newExt string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + newExt
}
