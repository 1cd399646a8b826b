package compiler

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
)

// ApplyUnmaps removes factory defaults: normal keys, then visual keys, then
// search aliases by leader. Each removal is isolated from the others.
func (c *Compiler) ApplyUnmaps(ctx context.Context, u *keys.Unmaps) Report {
	_, span := c.tracer.Start(ctx, "sitekeys.unmaps")
	defer span.End()

	var report Report
	if u.Empty() {
		return report
	}

	for _, section := range []struct {
		kind string
		mode keys.Mode
		list []string
	}{
		{"normal", keys.ModeNormal, u.Mappings},
		{"visual", keys.ModeVisual, u.VMappings},
	} {
		for _, k := range section.list {
			report.record(c.unmap(section.kind, k, "", func() error {
				return host.Unbind(c.host, section.mode, k)
			}))
		}
	}
	for _, leader := range u.Leaders() {
		for _, alias := range u.SearchAliases[leader] {
			report.record(c.unmap("search_alias", alias, leader, func() error {
				return c.host.RemoveSearchAlias(alias, leader)
			}))
		}
	}

	span.SetAttributes(
		attribute.Int("sitekeys.removed", report.Registered),
		attribute.Int("sitekeys.failed", report.Failed),
	)
	return report
}

func (c *Compiler) unmap(kind, id, leader string, remove func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("host panic: %v", r)
		}
		c.metrics.unmaps.WithLabelValues(kind, result(err)).Inc()
		if err != nil {
			fields := logrus.Fields{"kind": kind, "key": id}
			if leader != "" {
				fields["leader"] = leader
			}
			c.log.WithFields(fields).WithError(err).Warn("Failed to remove default binding")
		}
	}()
	return remove()
}
