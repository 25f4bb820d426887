// Package module wires the roster service and exposes its ports
package module

import (
	"timeclock/internal/modkit"
	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/modkit/repokit"
	"timeclock/internal/platform/clock"
	"timeclock/internal/services/roster/repo"
	"timeclock/internal/services/roster/service"
)

// Module defines the roster module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the roster module with its ports
func New(deps modkit.Deps) *Module {
	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG(), clock.System{})

	m := &Module{deps: deps}
	m.ports = Ports{
		Users:    svc,
		Accounts: svc,
		Admin:    svc,
	}
	return m
}

// Ports returns the module ports (Users, Accounts, Admin)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "roster" }

// Prefix returns the module config prefix (none; HTTP lives in the api modules)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
