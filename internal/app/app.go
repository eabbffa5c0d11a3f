// Package app implements the application layer for cbuild.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/cbuild/internal/adapters/fs"
	"go.trai.ch/cbuild/internal/adapters/watcher"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/cbuild/internal/engine/builder"
	embedgen "go.trai.ch/cbuild/internal/engine/embed"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      *builder.Builder
	store        ports.CacheStore
	watcher      ports.Watcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	b *builder.Builder,
	store ports.CacheStore,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		builder:      b,
		store:        store,
		watcher:      w,
		logger:       log,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// CC overrides the configured compiler when non-empty.
	CC string
}

// Build runs one incremental build pass in the current directory.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.loadConfig(opts.CC)
	if err != nil {
		return err
	}

	if err := a.builder.Build(ctx, cfg); err != nil {
		return errors.Join(domain.ErrBuildFailed, err)
	}

	return nil
}

// Clean removes the build artifacts and the persisted cache. Artifacts
// that cannot be removed are skipped; cleaning is best-effort by design
// since a locked file should not stop the rest from going away. The
// cache is deleted even when the bin directory is already gone — a
// surviving cache would make the next build skip every compile and link
// against objects that no longer exist.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.loadConfig("")
	if err != nil {
		return err
	}

	names, err := fs.ListVisible(cfg.BinDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrDirReadFailed.Error()), "dir", cfg.BinDir)
	}

	removed := 0
	for _, name := range names {
		if err := os.Remove(filepath.Join(cfg.BinDir, name)); err == nil {
			removed++
		}
	}

	_ = a.store.Delete()

	if removed == 0 {
		a.logger.Info("nothing to clean")
		return nil
	}

	a.logger.Info("cleaned")
	return nil
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// CC overrides the configured compiler when non-empty.
	CC string

	// Debounce is the window for coalescing file events into one rebuild.
	Debounce time.Duration
}

// Watch builds once, then rebuilds whenever a source or header changes.
// It blocks until ctx is canceled. Build failures are reported and
// watching continues, so a typo does not kill the session.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	if opts.Debounce <= 0 {
		opts.Debounce = watcher.DefaultDebounceWindow
	}

	if err := a.Build(ctx, BuildOptions{CC: opts.CC}); err != nil {
		a.logger.Error(err)
	}

	filter := watcher.NewContentFilter()

	// The debouncer hands batches to a single build loop instead of
	// building in its own goroutine: two builds racing on the same cache
	// file and object directory must never happen. A full queue is fine
	// to drop — the queued rebuild's staleness pass picks up anything
	// that changed in the meantime.
	batches := make(chan []string, 1)
	deb := watcher.NewDebouncer(opts.Debounce, func(paths []string) {
		select {
		case batches <- paths:
		default:
		}
	})

	if err := a.watcher.Start(ctx, "."); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}

	a.logger.Info("watching for changes")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			ext := filepath.Ext(event.Path)
			if ext != domain.SourceExt && ext != domain.HeaderExt {
				continue
			}
			deb.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-batches:
				if len(filter.Changed(paths)) == 0 {
					continue
				}
				if err := a.Build(ctx, BuildOptions{CC: opts.CC}); err != nil {
					a.logger.Error(err)
				}
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		deb.Flush()
		return a.watcher.Stop()
	})

	return g.Wait()
}

// Embed generates a C array carrying the content of src into out.
func (a *App) Embed(_ context.Context, src, out string, kind embedgen.Kind) error {
	a.logger.Info(fmt.Sprintf("EMBED '%s' into '%s'", src, out))

	in, err := os.Open(src) //nolint:gosec // user provided path
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEmbedSourceOpenFailed.Error()), "path", src)
	}
	defer func() { _ = in.Close() }()

	o, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // user provided path
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEmbedOutputOpenFailed.Error()), "path", out)
	}

	if err := embedgen.Write(o, in, src, kind); err != nil {
		_ = o.Close()
		return zerr.Wrap(err, "failed to write embed output")
	}

	return o.Close()
}

// loadConfig loads cbuild.yaml from the current directory and applies the
// compiler override.
func (a *App) loadConfig(cc string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if cc != "" {
		cfg.Compiler = cc
	}

	return cfg, nil
}
