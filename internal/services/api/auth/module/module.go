// Package module wires the auth surface into the API using modkit
package module

import (
	"net/http"

	modkit "timeclock/internal/modkit"
	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/platform/net/middleware"
	"timeclock/internal/platform/tokens"

	ahttp "timeclock/internal/services/api/auth/http"
	rosterdom "timeclock/internal/services/roster/domain"
)

// Module implements the auth API module
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
	Accounts rosterdom.AccountsPort
	Codec    *tokens.Codec
	Auth     middleware.AuthPort
}

// New constructs the auth module (config parity with other API modules)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("auth"),
		modkit.WithPrefix("/auth"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Accounts == nil {
		panic("auth API module requires Accounts port (from services/roster)")
	}
	if injected.Codec == nil {
		panic("auth API module requires a token codec")
	}
	if injected.Auth == nil {
		panic("auth API module requires an auth port")
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
		ahttp.Register(r, ahttp.Deps{
			Accounts: injected.Accounts,
			Codec:    injected.Codec,
			Auth:     injected.Auth,
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

// Ports returns no cross-module ports; auth is a leaf surface
func (m *Module) Ports() any { return nil }
