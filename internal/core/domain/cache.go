// Package domain contains the core types of the build cache.
package domain

// MtimeAbsent is the sentinel mtime for paths that have no cache entry.
// Valid modification times are always >= 0.
const MtimeAbsent int64 = -1

// CacheEntry records the last-modified time observed for a path at the
// last successful compile.
type CacheEntry struct {
	Path  string
	Mtime int64
}

// Cache maps file paths to recorded modification times. Paths are compared
// byte-for-byte and never canonicalized, so "./a.c" and "a.c" are distinct
// entries. Entries preserve insertion order so that serialization stays
// reproducible across save/load cycles.
//
// A Cache is owned by a single build session and is not safe for
// concurrent use.
type Cache struct {
	entries []CacheEntry
	index   map[string]int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		index: make(map[string]int),
	}
}

// Get returns the recorded mtime for path, or MtimeAbsent if the path has
// never been recorded.
func (c *Cache) Get(path string) int64 {
	if i, ok := c.index[path]; ok {
		return c.entries[i].Mtime
	}
	return MtimeAbsent
}

// Set upserts the entry for path. An existing entry keeps its position;
// a new entry is appended.
func (c *Cache) Set(path string, mtime int64) {
	if i, ok := c.index[path]; ok {
		c.entries[i].Mtime = mtime
		return
	}
	c.index[path] = len(c.entries)
	c.entries = append(c.entries, CacheEntry{Path: path, Mtime: mtime})
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Entries returns the entries in insertion order. The returned slice is a
// copy and may be retained by the caller.
func (c *Cache) Entries() []CacheEntry {
	out := make([]CacheEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
