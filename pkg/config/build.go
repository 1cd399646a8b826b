package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/sitekeys/pkg/actions"
	"github.com/grovetools/sitekeys/pkg/category"
	"github.com/grovetools/sitekeys/pkg/keys"
	"github.com/grovetools/sitekeys/pkg/search"
)

// Build converts f into a keys.Config, resolving actions through reg. Every
// problem found is reported at once; the returned Config holds whatever
// converted cleanly.
func (f *File) Build(reg *actions.Registry) (keys.Config, error) {
	var errs []error
	fail := func(section string, err error) {
		errs = append(errs, &ShapeError{Section: section, Err: err})
	}

	if err := CheckVersion(f.Version); err != nil {
		fail("version", err)
	}

	cfg := keys.Config{
		SiteLeader:   f.SiteLeader,
		SearchLeader: f.SearchLeader,
		Maps:         keys.DomainMap{},
		VMaps:        keys.DomainMap{},
	}

	if f.Unmaps != nil {
		cfg.Unmaps = &keys.Unmaps{
			Mappings:      f.Unmaps.Mappings,
			VMappings:     f.Unmaps.VMappings,
			SearchAliases: f.Unmaps.SearchAliases,
		}
	}

	if len(f.Keys.Aliases) > 0 {
		cfg.Aliases = keys.AliasGroup{}
		for base, hosts := range f.Keys.Aliases {
			cfg.Aliases[base] = append([]string(nil), hosts...)
		}
	}

	for _, id := range sortedKeys(f.SearchEngines) {
		e := f.SearchEngines[id]
		spec, err := e.build(reg)
		if err != nil {
			fail("search_engines."+id, err)
			continue
		}
		if cfg.SearchEngines == nil {
			cfg.SearchEngines = make(map[string]keys.SearchEngineSpec)
		}
		cfg.SearchEngines[id] = spec
	}

	for _, section := range []struct {
		name string
		src  map[string][]Binding
		dst  keys.DomainMap
	}{
		{"keys.maps", f.Keys.Maps, cfg.Maps},
		{"keys.vmaps", f.Keys.VMaps, cfg.VMaps},
	} {
		for _, domain := range sortedKeys(section.src) {
			for i, b := range section.src[domain] {
				where := fmt.Sprintf("%s.%s[%d]", section.name, domain, i)
				if b.Map != "" && (b.Action != "" || b.Lua != "") {
					log.WithFields(logrus.Fields{"section": where, "map": b.Map}).
						Warn("Binding declares map and a callback; using map")
				}
				spec, err := b.build(reg)
				if err != nil {
					fail(where, err)
					continue
				}
				section.dst[domain] = append(section.dst[domain], spec)
			}
		}
	}

	if f.DOI != nil {
		for _, domain := range sortedKeys(f.DOI.Domains) {
			open, err := actions.OpenDOI(reg.Host(), f.DOI.Handler, f.DOI.Domains[domain])
			if err != nil {
				fail("doi.domains."+domain, err)
				continue
			}
			// An alias target with no rules of its own would otherwise lose
			// its base's bindings once the DOI entry makes it explicit.
			if base, ok := keys.AliasOf(cfg.Maps, cfg.Aliases, domain); ok {
				cfg.Maps[domain] = append([]keys.BindingSpec(nil), cfg.Maps[base]...)
			}
			keys.RegisterDOI(cfg.Maps, domain, open)
		}
	}

	return cfg, errors.Join(errs...)
}

func (b Binding) build(reg *actions.Registry) (keys.BindingSpec, error) {
	cat, err := category.Lookup(b.Category)
	if err != nil {
		return keys.BindingSpec{}, err
	}

	spec := keys.BindingSpec{
		Alias:       b.Alias,
		Leader:      b.Leader,
		Category:    cat,
		Description: b.Description,
		Path:        b.Path,
		Hide:        b.Hide,
	}

	switch {
	case b.Map != "":
		spec.Action = keys.Remap{Target: b.Map}
	case b.Action != "" && b.Lua != "":
		return keys.BindingSpec{}, ErrAmbiguousBinding
	default:
		cb, err := callback(reg, b.Action, b.Args, b.Lua)
		if err != nil {
			return keys.BindingSpec{}, err
		}
		if cb == nil {
			return keys.BindingSpec{}, ErrMissingAction
		}
		spec.Action = keys.Invoke{Callback: cb}
	}
	return spec, nil
}

func (e SearchEngine) build(reg *actions.Registry) (keys.SearchEngineSpec, error) {
	if e.Action != "" && e.Lua != "" {
		return keys.SearchEngineSpec{}, ErrAmbiguousBinding
	}
	cb, err := callback(reg, e.Action, e.Args, e.Lua)
	if err != nil {
		return keys.SearchEngineSpec{}, err
	}

	spec := keys.SearchEngineSpec{
		Alias:    e.Alias,
		Name:     e.Name,
		Search:   search.Template(e.Search),
		Callback: cb,
		Favicon:  e.Favicon,
	}
	if e.Completion != nil {
		spec.Completion = &search.Completion{URL: search.Template(e.Completion.URL), Path: e.Completion.Path}
	}
	return spec, nil
}

// callback returns nil, nil when neither action nor script is set.
func callback(reg *actions.Registry, action string, args map[string]any, script string) (keys.Callback, error) {
	switch {
	case action != "":
		return reg.Build(action, args)
	case script != "":
		return actions.Lua(reg.Host(), script)
	}
	return nil, nil
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
