package bootstrap

import (
	"loyalty-engine/internal/pkg/metrics"
	"loyalty-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewCollector,
		func(c *metrics.Collector) commands.Metrics {
			return c
		},
	),
)
