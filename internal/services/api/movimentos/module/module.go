// Package module wires movimentos into the API using modkit
package module

import (
	"net/http"

	modkit "estoque/internal/modkit"
	"estoque/internal/modkit/httpkit"
	str "estoque/internal/platform/strings"
	movhttp "estoque/internal/services/api/movimentos/http"
	movrepo "estoque/internal/services/api/movimentos/repo"
	movsvc "estoque/internal/services/api/movimentos/service"
)

// Module implements the movimentos module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc movsvc.Service
}

// New constructs the movimentos module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("movimentos"), modkit.WithPrefix("/movimentos")},
		opts...,
	)...)

	repo := movrepo.NewPG()
	svc := movsvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Movements: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		movhttp.Register(r, m.svc)
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
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
