package compiler

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/grovetools/sitekeys/pkg/keys"
)

// RegisterKeys hydrates aliases into maps and registers every spec under mode.
// Domains run global first, then in lexical order; specs within a domain run in
// declared order, so a later duplicate key overrides an earlier one.
func (c *Compiler) RegisterKeys(ctx context.Context, maps keys.DomainMap, aliases keys.AliasGroup, siteLeader string, mode keys.Mode) Report {
	spanName := "sitekeys.maps"
	if mode == keys.ModeVisual {
		spanName = "sitekeys.vmaps"
	}
	_, span := c.tracer.Start(ctx, spanName)
	defer span.End()

	hydrated := keys.Hydrate(maps, aliases)

	var report Report
	for _, domain := range hydrated.Domains() {
		for _, spec := range hydrated[domain] {
			report.record(c.RegisterKey(domain, spec, siteLeader, mode))
		}
	}

	span.SetAttributes(
		attribute.Int("sitekeys.domains", len(hydrated)),
		attribute.Int("sitekeys.registered", report.Registered),
		attribute.Int("sitekeys.failed", report.Failed),
	)
	return report
}
