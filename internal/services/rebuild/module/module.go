// Package module wires the rebuild worker service and exposes its ports
package module

import (
	"time"

	"timeclock/internal/modkit"
	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/services/rebuild/service"
	rollupdom "timeclock/internal/services/rollup/domain"
	rosterdom "timeclock/internal/services/roster/domain"
)

// Module defines the rebuild worker module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the rebuild module. Retry tuning reads REBUILD_* keys;
// the roster and rollup ports come from the composition root
func New(deps modkit.Deps, users rosterdom.UsersPort, rollup rollupdom.AggregatorPort) *Module {
	cfg := deps.Cfg.Prefix("REBUILD_")
	svc := service.New(users, rollup, service.Config{
		MaxAttempts: cfg.MayInt("MAX_ATTEMPTS", 3),
		RetryBase:   cfg.MayDuration("RETRY_BASE", 250*time.Millisecond),
	})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "rebuild" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module config prefix (none)
func (m *Module) Prefix() string { return "" }

// MountRoutes is a no-op; the worker has no HTTP surface
func (m *Module) MountRoutes(_ httpkit.Router) {}
