// Package module wires the rollup service and exposes its ports
package module

import (
	"timeclock/internal/modkit"
	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/modkit/repokit"
	"timeclock/internal/platform/clock"
	"timeclock/internal/services/rollup/repo"
	"timeclock/internal/services/rollup/service"
	rosterdom "timeclock/internal/services/roster/domain"
)

// Module defines the rollup module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the rollup module. The roster Users port comes from the
// roster module, wired by the composition root
func New(deps modkit.Deps, users rosterdom.UsersPort) *Module {
	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG(), users, clock.System{})

	m := &Module{deps: deps}
	m.ports = Ports{
		Aggregator: svc,
		Reports:    svc,
	}
	return m
}

// Ports returns the module ports (Aggregator, Reports)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "rollup" }

// Prefix returns the module config prefix (none; HTTP lives in the api modules)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
