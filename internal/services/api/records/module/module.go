// Package module wires records into the API using modkit
package module

import (
	"net/http"

	modkit "recordkeeper/internal/modkit"
	"recordkeeper/internal/modkit/httpkit"
	"recordkeeper/internal/platform/config"
	recordshttp "recordkeeper/internal/services/api/records/http"
	recordsrepo "recordkeeper/internal/services/api/records/repo"
	recordssvc "recordkeeper/internal/services/api/records/service"
)

// Module implements the module contract for records
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)

	svc recordssvc.Service
}

// FromConfig reads the batch-engine tunables from the module config scope
func FromConfig(cfg config.Conf) recordssvc.Config {
	return recordssvc.Config{
		Workers:   cfg.MayInt("PROCESS_WORKERS", 10),
		WorkDelay: cfg.MayDuration("PROCESS_DELAY", 0),
	}
}

// New constructs a records module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("records"), modkit.WithPrefix("/items")}, opts...)...)

	repo := recordsrepo.NewPG()
	svc := recordssvc.New(deps.PG, repo, FromConfig(deps.Cfg.Prefix("RECORDS_")))

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		recordshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Service exposes the records service port for callers outside HTTP
func (m *Module) Service() recordssvc.Service { return m.svc }

// MountRoutes implements the module contract
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
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

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
