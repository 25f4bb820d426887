// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "timeclock/internal/modkit"
	"timeclock/internal/modkit/httpkit"

	metahttp "timeclock/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps modkit.Deps
	name string
	mws  []func(http.Handler) http.Handler

	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		mws:       b.Mw,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "timeclock-api",
			StartedAt:   m.startedAt,
			PG:          deps.PG,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes mounts the probe routes at the router root, outside auth
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix (none; probes live at the root)
func (m *Module) Prefix() string { return "" }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
