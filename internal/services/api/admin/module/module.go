// Package module wires the admin surface into the API using modkit
package module

import (
	"net/http"

	modkit "timeclock/internal/modkit"
	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/platform/net/middleware"

	adhttp "timeclock/internal/services/api/admin/http"
	attdom "timeclock/internal/services/attendance/domain"
	rollupdom "timeclock/internal/services/rollup/domain"
	rosterdom "timeclock/internal/services/roster/domain"
)

// Module implements the admin API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// Ports declares the injected collaborators for this API module
type Ports struct {
	Editor  attdom.AdminPort
	Roster  rosterdom.AdminPort
	Reports rollupdom.ReportsPort
	Auth    middleware.AuthPort
}

// New constructs the admin module (config parity with other API modules)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("admin"),
		modkit.WithPrefix("/admin"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Editor == nil {
		panic("admin API module requires Editor port (from services/attendance)")
	}
	if injected.Roster == nil {
		panic("admin API module requires Roster port (from services/roster)")
	}
	if injected.Reports == nil {
		panic("admin API module requires Reports port (from services/rollup)")
	}
	if injected.Auth == nil {
		panic("admin API module requires an auth port")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		adhttp.Register(r, adhttp.Deps{
			Editor:  injected.Editor,
			Roster:  injected.Roster,
			Reports: injected.Reports,
			Auth:    injected.Auth,
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }

// Ports returns no cross-module ports; the worker modules own the domain ports
func (m *Module) Ports() any { return nil }
