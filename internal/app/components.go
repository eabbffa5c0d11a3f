package app

import "go.trai.ch/cbuild/internal/core/ports"

// Components bundles the wired application objects the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
