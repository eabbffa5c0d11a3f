// Package cache persists the build cache as a flat text file.
//
// The format is one line per tracked path:
//
//	"<path>" <decimal-mtime>
//
// Paths must not contain double quotes or newlines. Anything after the
// mtime digits is ignored, matching the lenient number parsing of the
// original format.
package cache

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore on a flat file.
type Store struct {
	path string
}

// NewStore creates a store backed by the default cache file in the
// working directory.
func NewStore() *Store {
	return NewStoreWithPath(domain.CacheFileName)
}

// NewStoreWithPath creates a store backed by the file at path.
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted cache. A missing file yields an empty cache.
// A line that does not start with a double quote, or that has no closing
// quote, fails the whole load with domain.ErrCacheCorrupted.
func (s *Store) Load() (*domain.Cache, error) {
	c := domain.NewCache()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open build cache"), "path", s.path)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		path, mtime, err := parseLine(scanner.Text())
		if err != nil {
			return nil, zerr.With(err, "line", lineno)
		}
		c.Set(path, mtime)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read build cache"), "path", s.path)
	}

	return c, nil
}

// parseLine parses a single `"<path>" <mtime>` line.
func parseLine(line string) (string, int64, error) {
	if len(line) == 0 || line[0] != '"' {
		return "", 0, zerr.Wrap(domain.ErrCacheCorrupted, "cache line does not start with a quote")
	}

	end := strings.IndexByte(line[1:], '"')
	if end < 0 {
		return "", 0, zerr.Wrap(domain.ErrCacheCorrupted, "cache line is missing a closing quote")
	}
	path := line[1 : 1+end]

	// One space, then base-10 digits. Trailing garbage after the number
	// is silently ignored.
	rest := strings.TrimPrefix(line[2+end:], " ")
	return path, parseLeadingInt(rest), nil
}

// parseLeadingInt parses the leading decimal integer of s, returning 0
// when s does not start with one.
func parseLeadingInt(s string) int64 {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	n, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Save serializes every entry in insertion order and replaces the
// persisted file atomically: the content is written to a temporary file
// in the same directory and renamed over the target, so a concurrent
// reader sees either the old or the new complete file.
func (s *Store) Save(c *domain.Cache) error {
	var buf bytes.Buffer
	for _, e := range c.Entries() {
		fmt.Fprintf(&buf, "\"%s\" %d\n", e.Path, e.Mtime)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheSaveFailed.Error())
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheSaveFailed.Error())
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheSaveFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheSaveFailed.Error())
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, domain.ErrCacheSaveFailed.Error())
	}
	return nil
}

// Delete removes the persisted file. A missing file is not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to delete build cache"), "path", s.path)
	}
	return nil
}
