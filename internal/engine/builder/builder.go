// Package builder implements the incremental compile and link pass.
package builder

import (
	"context"
	"path/filepath"

	"go.trai.ch/cbuild/internal/adapters/fs"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder runs the incremental build pass: it compares every source and
// header against the persisted mtime cache, recompiles what changed, and
// links the output when anything was produced.
type Builder struct {
	runner ports.Runner
	store  ports.CacheStore
	logger ports.Logger
}

// New creates a new Builder.
func New(runner ports.Runner, store ports.CacheStore, logger ports.Logger) *Builder {
	return &Builder{
		runner: runner,
		store:  store,
		logger: logger,
	}
}

// Build performs one full build pass for cfg.
//
// Headers are scanned first across every source directory: a changed
// header cannot be attributed to individual translation units, so it
// forces every source to recompile. Sources are then compiled one object
// at a time, and the objects linked into cfg.OutPath(). The cache is only
// persisted when at least one subprocess will run, so a failed compile
// leaves the previous cache intact and the next run retries.
func (b *Builder) Build(ctx context.Context, cfg *domain.Config) error {
	if err := fs.EnsureDir(cfg.BinDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutDirCreateFailed.Error()), "dir", cfg.BinDir)
	}

	cache, err := b.store.Load()
	if err != nil {
		return err
	}

	listings := make(map[string][]string, len(cfg.SrcDirs))
	for _, dir := range cfg.SrcDirs {
		names, err := fs.ListVisible(dir)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDirReadFailed.Error()), "dir", dir)
		}
		listings[dir] = names
	}

	// Header pass. Every header in every directory is refreshed so the
	// cache stays current even when several headers changed at once.
	rebuildAll := false
	for _, dir := range cfg.SrcDirs {
		for _, name := range listings[dir] {
			if filepath.Ext(name) != domain.HeaderExt {
				continue
			}
			stale, err := refresh(cache, filepath.Join(dir, name))
			if err != nil {
				return err
			}
			if stale {
				rebuildAll = true
			}
		}
	}

	// Source pass.
	var objects []string
	compiled := 0
	for _, dir := range cfg.SrcDirs {
		for _, name := range listings[dir] {
			if filepath.Ext(name) != domain.SourceExt {
				continue
			}

			src := filepath.Join(dir, name)
			obj := filepath.Join(cfg.BinDir, fs.ReplaceExt(name, domain.ObjectExt))
			objects = append(objects, obj)

			stale, err := refresh(cache, src)
			if err != nil {
				return err
			}
			if !stale && !rebuildAll {
				continue
			}

			if err := b.runner.Run(ctx, compileArgv(cfg, src, obj)); err != nil {
				return err
			}
			compiled++
		}
	}

	if len(objects) == 0 {
		b.logger.Info("nothing to build")
		return nil
	}

	outPath := cfg.OutPath()
	if compiled == 0 && !rebuildAll && fs.Exists(outPath) {
		b.logger.Info("nothing to rebuild")
		return nil
	}

	if err := b.store.Save(cache); err != nil {
		return err
	}

	if err := b.runner.Run(ctx, linkArgv(cfg, objects, outPath)); err != nil {
		return err
	}

	b.logger.Info("built " + outPath)
	return nil
}

// refresh compares the current mtime of path against the cache, records
// the current value, and reports whether the file is stale. Any mtime
// difference counts, forward or backward, and a file the cache has never
// seen is always stale.
func refresh(cache *domain.Cache, path string) (bool, error) {
	now, err := fs.Mtime(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrMtimeReadFailed.Error()), "path", path)
	}

	cached := cache.Get(path)
	if cached == now {
		return false, nil
	}

	cache.Set(path, now)
	return true, nil
}

func compileArgv(cfg *domain.Config, src, obj string) []string {
	argv := []string{cfg.Compiler, "-c", src, "-o", obj}
	return append(argv, cfg.CFlags...)
}

func linkArgv(cfg *domain.Config, objects []string, outPath string) []string {
	argv := []string{cfg.Compiler}
	argv = append(argv, objects...)
	argv = append(argv, "-o", outPath)
	argv = append(argv, cfg.CFlags...)
	return append(argv, cfg.LDFlags...)
}
