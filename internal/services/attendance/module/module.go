// Package module wires the attendance service and exposes its ports
package module

import (
	"timeclock/internal/core/timecalc"
	"timeclock/internal/modkit"
	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/modkit/repokit"
	"timeclock/internal/services/attendance/repo"
	"timeclock/internal/services/attendance/service"
	rollupdom "timeclock/internal/services/rollup/domain"
	rosterdom "timeclock/internal/services/roster/domain"
)

// Options carries the cross-module dependencies the composition root wires
type Options struct {
	Users   rosterdom.UsersPort
	Rollup  rollupdom.AggregatorPort
	Reports rollupdom.ReportsPort

	// Engine overrides the default fixed-offset metrics engine
	Engine *timecalc.Engine
}

// Module defines the attendance module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the attendance module
func New(deps modkit.Deps, opts Options) *Module {
	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG(), service.Options{
		Users:   opts.Users,
		Rollup:  opts.Rollup,
		Reports: opts.Reports,
		Engine:  opts.Engine,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Punches: svc,
		Admin:   svc,
	}
	return m
}

// Ports returns the module ports (Punches, Admin)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "attendance" }

// Prefix returns the module config prefix (none; HTTP lives in the api modules)
func (m *Module) Prefix() string { return "" }

// MountRoutes returns no HTTP routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
