// Package module wires unidades into the API using modkit
package module

import (
	"net/http"

	modkit "estoque/internal/modkit"
	"estoque/internal/modkit/httpkit"
	str "estoque/internal/platform/strings"
	unidhttp "estoque/internal/services/api/unidades/http"
	unidrepo "estoque/internal/services/api/unidades/repo"
	unidsvc "estoque/internal/services/api/unidades/service"
)

// Module implements the unidades module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc unidsvc.Service
}

// New constructs the unidades module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("unidades"), modkit.WithPrefix("/unidades")},
		opts...,
	)...)

	repo := unidrepo.NewPG()
	svc := unidsvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Units: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		unidhttp.Register(r, m.svc)
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
