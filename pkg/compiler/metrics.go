package compiler

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	registered *prometheus.CounterVec
	failed     *prometheus.CounterVec
	unmaps     *prometheus.CounterVec
	engines    *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		registered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitekeys_bindings_registered_total",
			Help: "Bindings accepted by the host engine.",
		}, []string{"mode", "kind"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitekeys_bindings_failed_total",
			Help: "Bindings that failed to compile or were rejected by the host engine.",
		}, []string{"mode"}),
		unmaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitekeys_unmaps_total",
			Help: "Default binding removals by kind and result.",
		}, []string{"kind", "result"}),
		engines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitekeys_search_engines_total",
			Help: "Search engine registrations by result.",
		}, []string{"result"}),
	}

	var err error
	if m.registered, err = register(reg, m.registered); err != nil {
		return nil, err
	}
	if m.failed, err = register(reg, m.failed); err != nil {
		return nil, err
	}
	if m.unmaps, err = register(reg, m.unmaps); err != nil {
		return nil, err
	}
	if m.engines, err = register(reg, m.engines); err != nil {
		return nil, err
	}
	return m, nil
}

// register reuses an already registered vector so several compilers can share
// one registry.
func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func result(err error) string {
	if err != nil {
		return "failed"
	}
	return "ok"
}
