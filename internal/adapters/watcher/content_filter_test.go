package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/watcher"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestContentFilter_NewFileIsChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	writeFile(t, path, "int main(void) { return 0; }\n")

	f := watcher.NewContentFilter()

	changed := f.Changed([]string{path})
	assert.Equal(t, []string{path}, changed)
}

func TestContentFilter_UnchangedContentFiltered(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	writeFile(t, path, "int main(void) { return 0; }\n")

	f := watcher.NewContentFilter()
	f.Changed([]string{path})

	// Rewrite with identical bytes, as a format-on-save noop would.
	writeFile(t, path, "int main(void) { return 0; }\n")

	changed := f.Changed([]string{path})
	assert.Empty(t, changed)
}

func TestContentFilter_ModifiedContentReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	writeFile(t, path, "int main(void) { return 0; }\n")

	f := watcher.NewContentFilter()
	f.Changed([]string{path})

	writeFile(t, path, "int main(void) { return 1; }\n")

	changed := f.Changed([]string{path})
	assert.Equal(t, []string{path}, changed)
}

func TestContentFilter_DeletedFileReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	writeFile(t, path, "int main(void) { return 0; }\n")

	f := watcher.NewContentFilter()
	f.Changed([]string{path})

	require.NoError(t, os.Remove(path))

	changed := f.Changed([]string{path})
	assert.Equal(t, []string{path}, changed)
}

func TestContentFilter_MixedBatch(t *testing.T) {
	dir := t.TempDir()
	stable := filepath.Join(dir, "util.c")
	edited := filepath.Join(dir, "main.c")
	writeFile(t, stable, "void noop(void) {}\n")
	writeFile(t, edited, "int main(void) { return 0; }\n")

	f := watcher.NewContentFilter()
	f.Changed([]string{stable, edited})

	writeFile(t, edited, "int main(void) { return 7; }\n")

	changed := f.Changed([]string{stable, edited})
	assert.Equal(t, []string{edited}, changed)
}
