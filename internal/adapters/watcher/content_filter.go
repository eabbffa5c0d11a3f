package watcher

import (
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
)

// ContentFilter suppresses rebuild triggers for files whose content did
// not actually change. Editors and tools frequently rewrite files with
// identical bytes (touch, format-on-save noops), which would otherwise
// bump the mtime and force a pointless compile.
type ContentFilter struct {
	mu     sync.Mutex
	hashes map[unique.Handle[string]]uint64
}

// NewContentFilter creates an empty content filter.
func NewContentFilter() *ContentFilter {
	return &ContentFilter{
		hashes: make(map[unique.Handle[string]]uint64),
	}
}

// Changed returns the subset of paths whose content hash differs from the
// last observation. Unreadable paths (typically deleted files) count as
// changed and are evicted from the filter.
func (f *ContentFilter) Changed(paths []string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	changed := make([]string, 0, len(paths))

	for _, path := range paths {
		handle := unique.Make(path)

		data, err := os.ReadFile(path) //nolint:gosec // paths come from the file watcher
		if err != nil {
			delete(f.hashes, handle)
			changed = append(changed, path)
			continue
		}

		sum := xxhash.Sum64(data)
		if prev, ok := f.hashes[handle]; ok && prev == sum {
			continue
		}

		f.hashes[handle] = sum
		changed = append(changed, path)
	}

	return changed
}
