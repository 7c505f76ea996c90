// Package module wires previsao into the API using modkit
package module

import (
	"net/http"

	modkit "estoque/internal/modkit"
	"estoque/internal/modkit/httpkit"
	str "estoque/internal/platform/strings"
	prevhttp "estoque/internal/services/api/previsao/http"
	prevrepo "estoque/internal/services/api/previsao/repo"
	prevsvc "estoque/internal/services/api/previsao/service"
)

// Module implements the previsao module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc prevsvc.Service
}

// New constructs the previsao module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("previsao"), modkit.WithPrefix("/previsao")},
		opts...,
	)...)

	repo := prevrepo.NewPG()
	svc := prevsvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Forecast: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		prevhttp.Register(r, m.svc)
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
