package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/sitekeys/pkg/actions"
	"github.com/grovetools/sitekeys/pkg/category"
	"github.com/grovetools/sitekeys/pkg/compiler"
	"github.com/grovetools/sitekeys/pkg/config"
	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
	"github.com/grovetools/sitekeys/pkg/predicate"
)

// session is one load-and-compile pass against an in-memory host seeded with
// the standard factory defaults.
type session struct {
	paths    []string
	file     *config.File
	cfg      keys.Config
	host     *host.Memory
	metrics  *prometheus.Registry
	compiler *compiler.Compiler
	summary  compiler.Summary

	// skipped holds the rules Build rejected; the rest still compile.
	skipped []error

	// scopes maps a predicate source back to the domain (and path) it came from.
	scopes map[string]string
}

func newSession(ctx context.Context, log logrus.FieldLogger, paths []string) (*session, error) {
	file, err := config.LoadFiles(ctx, paths...)
	if err != nil {
		return nil, err
	}

	h := host.NewMemory(host.StandardDefaults()...)
	cfg, err := file.Build(actions.NewRegistry(h))
	if errors.Is(err, config.ErrUnsupportedVersion) {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	skipped := flattenErrors(err)
	for _, e := range skipped {
		log.WithError(e).Warn("Skipping malformed rule")
	}

	metrics := prometheus.NewRegistry()
	c, err := compiler.New(h, compiler.WithLogger(log), compiler.WithRegisterer(metrics))
	if err != nil {
		return nil, err
	}

	s := &session{
		paths:    paths,
		file:     file,
		cfg:      cfg,
		host:     h,
		metrics:  metrics,
		compiler: c,
		skipped:  skipped,
		scopes:   make(map[string]string),
	}
	for _, maps := range []keys.DomainMap{cfg.Maps, cfg.VMaps} {
		hydrated := keys.Hydrate(maps, cfg.Aliases)
		for domain, specs := range hydrated {
			if domain == keys.GlobalDomain {
				continue
			}
			for _, spec := range specs {
				label := domain
				if spec.Path != "" {
					label += spec.Path
				}
				if base, ok := keys.AliasOf(maps, cfg.Aliases, domain); ok {
					label += " (" + base + ")"
				}
				s.scopes[predicate.Pattern(domain, spec.Path)] = label
			}
		}
	}
	return s, nil
}

// run applies the configuration to the host.
func (s *session) run(ctx context.Context) compiler.Summary {
	s.summary = s.compiler.Startup(ctx, s.cfg)
	return s.summary
}

// failed counts registration failures plus rules skipped at build time.
func (s *session) failed() int {
	return s.summary.Failed() + len(s.skipped)
}

// scopeLabel names the scope of a registration for display.
func (s *session) scopeLabel(reg host.Registration) string {
	if reg.Domain == nil {
		return keys.GlobalDomain
	}
	if label, ok := s.scopes[reg.Domain.String()]; ok {
		return label
	}
	return reg.Domain.String()
}

// bindingView is the display form of one effective registration.
type bindingView struct {
	Mode        string `json:"mode"`
	Key         string `json:"key"`
	Scope       string `json:"scope"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Target      string `json:"target,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// splitDescription separates "#<tag> <text>" into tag and text. Descriptions
// without a tag belong to factory defaults.
func splitDescription(desc string) (category.Category, string) {
	if !strings.HasPrefix(desc, "#") {
		return "", desc
	}
	tag, text, _ := strings.Cut(strings.TrimPrefix(desc, "#"), " ")
	c, err := category.Lookup(tag)
	if err != nil {
		return "", desc
	}
	return c, text
}

// views lists the effective bindings of mode, sorted by scope then key.
func (s *session) views(mode keys.Mode) []bindingView {
	regs := s.host.Bindings(mode)
	out := make([]bindingView, 0, len(regs))
	for _, reg := range regs {
		cat, text := splitDescription(reg.Description)
		v := bindingView{
			Mode:        mode.String(),
			Key:         reg.Key,
			Scope:       s.scopeLabel(reg),
			Category:    string(cat),
			Description: text,
			Kind:        "default",
			Hidden:      reg.Hidden,
		}
		if cat != "" {
			v.Kind = reg.Action.Kind()
		}
		if r, ok := reg.Action.(keys.Remap); ok {
			v.Target = r.Target
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			if out[i].Scope == keys.GlobalDomain || out[j].Scope == keys.GlobalDomain {
				return out[i].Scope == keys.GlobalDomain
			}
			return out[i].Scope < out[j].Scope
		}
		return out[i].Key < out[j].Key
	})
	return out
}
