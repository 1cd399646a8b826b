// Package compiler turns binding declarations into host engine registrations.
//
// Each binding is compiled and submitted on its own: a malformed entry or a
// rejection from the host costs that one shortcut and nothing else.
package compiler

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
	"github.com/grovetools/sitekeys/pkg/logger"
	"github.com/grovetools/sitekeys/pkg/predicate"
)

const tracerName = "github.com/grovetools/sitekeys/pkg/compiler"

// Host is the part of the host the compiler drives.
type Host interface {
	host.Keys
	host.SearchAliases
	host.Omnibar
	host.Clipboard
}

// Compiler registers bindings, search engines and unmaps against a Host.
type Compiler struct {
	host    Host
	log     logrus.FieldLogger
	reg     prometheus.Registerer
	metrics *metrics
	tracer  trace.Tracer
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger. Defaults to logger.New("compiler").
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Compiler) {
		c.log = log
	}
}

// WithRegisterer sets where metrics are registered. Defaults to a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Compiler) {
		c.reg = reg
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *Compiler) {
		c.tracer = t
	}
}

// New creates a Compiler for h.
func New(h Host, opts ...Option) (*Compiler, error) {
	if h == nil {
		return nil, fmt.Errorf("host is required")
	}
	c := &Compiler{host: h}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.New("compiler")
	}
	if c.reg == nil {
		c.reg = prometheus.NewRegistry()
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}

	m, err := newMetrics(c.reg)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}
	c.metrics = m
	return c, nil
}

// Compile resolves spec into the registration the host would receive,
// without submitting it.
func (c *Compiler) Compile(domain string, spec keys.BindingSpec, siteLeader string, mode keys.Mode) (host.Registration, error) {
	if mode != keys.ModeNormal && mode != keys.ModeVisual {
		return host.Registration{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	if spec.Alias == "" {
		return host.Registration{}, ErrEmptyAlias
	}
	if spec.Action == nil {
		return host.Registration{}, ErrNoAction
	}

	reg := host.Registration{
		Key:         spec.FinalKey(domain, siteLeader),
		Description: spec.HelpDescription(),
		Action:      spec.Action,
		Hidden:      spec.Hide,
	}

	if domain != keys.GlobalDomain {
		re, err := predicate.ForDomain(domain, spec.Path)
		if err != nil {
			return host.Registration{}, err
		}
		reg.Domain = re
	}
	return reg, nil
}

// RegisterKey compiles spec and submits it to the host registry for mode.
// Any failure, including a panic inside the host, is logged with the alias and
// mode and returned as a *RegistrationError.
func (c *Compiler) RegisterKey(domain string, spec keys.BindingSpec, siteLeader string, mode keys.Mode) (err error) {
	key := spec.FinalKey(domain, siteLeader)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("host panic: %v", r)
		}
		if err == nil {
			return
		}
		err = &RegistrationError{Domain: domain, Alias: spec.Alias, Key: key, Mode: mode, Err: err}
		c.metrics.failed.WithLabelValues(mode.String()).Inc()
		c.log.WithFields(logrus.Fields{
			"alias":  spec.Alias,
			"key":    key,
			"mode":   mode.String(),
			"domain": domain,
		}).WithError(err).Error("Error registering key")
	}()

	reg, err := c.Compile(domain, spec, siteLeader, mode)
	if err != nil {
		return err
	}
	if err := host.Bind(c.host, mode, reg); err != nil {
		return err
	}

	c.metrics.registered.WithLabelValues(mode.String(), spec.Action.Kind()).Inc()
	c.log.WithFields(logrus.Fields{
		"key":    reg.Key,
		"mode":   mode.String(),
		"domain": domain,
		"kind":   spec.Action.Kind(),
	}).Debug("Registered key")
	return nil
}
