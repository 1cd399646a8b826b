package compiler

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/grovetools/sitekeys/pkg/keys"
)

// Startup runs one full pass: unmaps, search engines, normal bindings, then
// visual bindings. Absent sections are skipped. Defaults are cleared before
// anything new is bound, and search-derived keys exist before general normal
// bindings are layered over them.
func (c *Compiler) Startup(ctx context.Context, cfg keys.Config) Summary {
	summary := Summary{RunID: uuid.NewString()}

	ctx, span := c.tracer.Start(ctx, "sitekeys.startup")
	defer span.End()
	span.SetAttributes(attribute.String("sitekeys.run_id", summary.RunID))

	run := *c
	run.log = c.log.WithField("run_id", summary.RunID)

	if !cfg.Unmaps.Empty() {
		summary.Unmaps = run.ApplyUnmaps(ctx, cfg.Unmaps)
	}
	if len(cfg.SearchEngines) > 0 {
		summary.SearchEngines = run.RegisterSearchEngines(ctx, cfg.SearchEngines, cfg.ResolvedSearchLeader())
	}
	if len(cfg.Maps) > 0 {
		summary.Maps = run.RegisterKeys(ctx, cfg.Maps, cfg.Aliases, cfg.SiteLeader, keys.ModeNormal)
	}
	if len(cfg.VMaps) > 0 {
		summary.VMaps = run.RegisterKeys(ctx, cfg.VMaps, cfg.Aliases, cfg.SiteLeader, keys.ModeVisual)
	}

	span.SetAttributes(attribute.Int("sitekeys.failed", summary.Failed()))
	run.log.WithFields(logrus.Fields{
		"unmapped":       summary.Unmaps.Registered,
		"search_engines": len(cfg.SearchEngines),
		"maps":           summary.Maps.Registered,
		"vmaps":          summary.VMaps.Registered,
		"failed":         summary.Failed(),
	}).Info("Startup complete")
	return summary
}
