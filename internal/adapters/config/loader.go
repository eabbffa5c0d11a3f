// Package config loads the cbuild.yaml project configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for cbuild.yaml files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads cbuild.yaml from cwd. A missing file is not an error and
// yields the default configuration.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(cwd, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is the well-known config file under cwd
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file Buildfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Compiler != "" {
		cfg.Compiler = file.Compiler
	}
	if len(file.Src) > 0 {
		cfg.SrcDirs = file.Src
	}
	if file.Bin != "" {
		cfg.BinDir = file.Bin
	}
	if file.Out != "" {
		cfg.Out = file.Out
	}
	cfg.CFlags = file.CFlags
	cfg.LDFlags = file.LDFlags

	return cfg, nil
}
