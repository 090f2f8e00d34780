package cli

import (
	"github.com/coreyphillips/bdk-rn/internal/config"
	"github.com/coreyphillips/bdk-rn/internal/metrics"
	"github.com/coreyphillips/bdk-rn/internal/output"
	"github.com/coreyphillips/bdk-rn/pkg/bdk"
)

// Compile-time interface checks.
var (
	_ bdk.LogWriter       = (*config.Logger)(nil)
	_ bdk.MetricsRecorder = (*metrics.Metrics)(nil)
)

// EngineFactory builds the wallet engine behind the façade.
type EngineFactory func(cfg *config.Config) bdk.Engine

// CommandContext holds dependencies for CLI commands. It is populated in
// the root command's PersistentPreRunE.
type CommandContext struct {
	Config    *config.Config
	Logger    *config.Logger
	Formatter *output.Formatter
	Metrics   *metrics.Metrics
	Service   *bdk.Service
}

// NewCommandContext wires the façade service from its dependencies.
func NewCommandContext(
	cfg *config.Config,
	logger *config.Logger,
	formatter *output.Formatter,
	m *metrics.Metrics,
	engine bdk.Engine,
) *CommandContext {
	return &CommandContext{
		Config:    cfg,
		Logger:    logger,
		Formatter: formatter,
		Metrics:   m,
		Service: bdk.NewService(&bdk.Config{
			Engine:  engine,
			Logger:  logger,
			Metrics: m,
		}),
	}
}
