package compiler

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/grovetools/sitekeys/pkg/category"
	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
)

// OmnibarSearchEngine is the omnibar type that opens a prompt scoped to an engine.
const OmnibarSearchEngine = "SearchEngine"

// RegisterSearchEngines registers each engine with the search alias subsystem
// and binds two derived global keys per engine: searchLeader+alias opens a
// scoped prompt, "c"+searchLeader+alias opens it prefilled with the clipboard.
// Engines run in id order. An engine whose alias is rejected gets no derived keys.
// searchLeader is used as given; an empty leader binds the alias itself.
func (c *Compiler) RegisterSearchEngines(ctx context.Context, engines map[string]keys.SearchEngineSpec, searchLeader string) Report {
	_, span := c.tracer.Start(ctx, "sitekeys.search_engines")
	defer span.End()

	cfg := keys.Config{SearchEngines: engines}
	var report Report
	for _, id := range cfg.EngineIDs() {
		s := engines[id]
		if err := c.addSearchAlias(id, s); err != nil {
			report.record(err)
			continue
		}
		for _, spec := range c.SearchEngineBindings(s, searchLeader) {
			report.record(c.RegisterKey(keys.GlobalDomain, spec, "", keys.ModeNormal))
		}
	}

	span.SetAttributes(
		attribute.Int("sitekeys.engines", len(engines)),
		attribute.Int("sitekeys.failed", report.Failed),
	)
	return report
}

func (c *Compiler) addSearchAlias(id string, s keys.SearchEngineSpec) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("host panic: %v", r)
		}
		c.metrics.engines.WithLabelValues(result(err)).Inc()
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"engine": id,
				"alias":  s.Alias,
			}).WithError(err).Error("Error registering search engine")
		}
	}()

	if s.Alias == "" {
		return fmt.Errorf("search engine %q: %w", id, ErrEmptyAlias)
	}

	return c.host.AddSearchAlias(host.SearchAlias{
		Alias:         s.Alias,
		Name:          s.Name,
		Search:        s.Search,
		EmptyModifier: "",
		Completion:    s.Completion,
		Callback:      s.Callback,
		FaviconURL:    s.Favicon,
		SkipAutoMap:   true,
	})
}

// SearchEngineBindings returns the two global normal-mode bindings derived
// from s: the scoped prompt and its clipboard-prefilled variant.
func (c *Compiler) SearchEngineBindings(s keys.SearchEngineSpec, searchLeader string) []keys.BindingSpec {
	return []keys.BindingSpec{
		c.searchBinding(s, searchLeader),
		c.clipboardSearchBinding(s, searchLeader),
	}
}

func (c *Compiler) searchBinding(s keys.SearchEngineSpec, searchLeader string) keys.BindingSpec {
	alias := s.Alias
	return keys.Bind(searchLeader+alias, func(context.Context) error {
		return c.host.OpenOmnibar(host.OmnibarRequest{Type: OmnibarSearchEngine, Extra: alias})
	}).InCategory(category.Omnibar).Described("Search " + s.Name)
}

func (c *Compiler) clipboardSearchBinding(s keys.SearchEngineSpec, searchLeader string) keys.BindingSpec {
	alias := s.Alias
	return keys.Bind("c"+searchLeader+alias, func(ctx context.Context) error {
		text, err := c.host.ReadClipboard(ctx)
		if err != nil {
			return fmt.Errorf("reading clipboard: %w", err)
		}
		return c.host.OpenOmnibar(host.OmnibarRequest{Type: OmnibarSearchEngine, Extra: alias, Prefill: text})
	}).InCategory(category.Omnibar).Described("Search " + s.Name + " with clipboard contents")
}
