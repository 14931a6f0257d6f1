package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/golinq/config"
	"github.com/kbukum/golinq/linq"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/observability"
	"github.com/kbukum/golinq/version"
)

const appName = "linqctl"

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
)

type shutdownFunc func(context.Context) error

// app is the state shared by all subcommands of one invocation.
type app struct {
	configFile string
	logLevel   string

	initTracer func(context.Context, *observability.TracerConfig) (shutdownFunc, error)
	initMeter  func(context.Context, *observability.MeterConfig) (shutdownFunc, error)

	cfg      *config.AppConfig
	log      *logger.Logger
	metrics  *observability.Metrics
	span     trace.Span
	shutdown []shutdownFunc
}

func newApp() *app {
	return &app{
		initTracer: func(ctx context.Context, c *observability.TracerConfig) (shutdownFunc, error) {
			tp, err := observability.InitTracer(ctx, c)
			if err != nil {
				return nil, err
			}
			return tp.Shutdown, nil
		},
		initMeter: func(ctx context.Context, c *observability.MeterConfig) (shutdownFunc, error) {
			mp, err := observability.InitMeter(ctx, c)
			if err != nil {
				return nil, err
			}
			return mp.Shutdown, nil
		},
	}
}

func newRootCommand() *cobra.Command {
	return newApp().command()
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:          appName,
		Short:        "Run lazy queries over in-memory datasets",
		Long:         "linqctl loads a dataset and runs a composed query pipeline over it: filter, sort, take, project and aggregate.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd.Context()); err != nil {
				return err
			}
			ctx, span := observability.StartSpan(cmd.Context(), observability.SpanCommand,
				trace.WithAttributes(attribute.String(observability.AttrCommand, cmd.CommandPath())))
			a.span = span
			cmd.SetContext(ctx)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, configFlag, "", "path to config.yml (default: search ./, ./cmd/linqctl, ./config, ~/.linqctl)")
	flags.StringVar(&a.logLevel, logLevelFlag, "", "override logging.level (debug, info, warn, error, disabled)")

	cmd.AddCommand(newPeopleCommand(a))
	cmd.AddCommand(newRangeCommand(a))
	cmd.AddCommand(newVersionCommand(a))
	return cmd
}

func (a *app) setup(ctx context.Context) error {
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	cfg, err := config.Load(appName, opts...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger.Init(cfg.Logging)
	a.log = logger.WithComponent(appName)
	logger.Register(linq.TraceLoggerName, logger.WithComponent(linq.TraceLoggerName))
	a.log.Debug("configuration loaded", logger.Fields(
		"environment", cfg.Environment,
		"tracing", cfg.Tracing.Enabled,
	))

	if cfg.Tracing.Enabled {
		if err := a.initTelemetry(ctx); err != nil {
			if cerr := a.close(ctx); cerr != nil {
				a.log.Warn("telemetry shutdown failed", logger.ErrorFields("setup", cerr))
			}
			return err
		}
	}
	return nil
}

func (a *app) initTelemetry(ctx context.Context) error {
	tc := observability.DefaultTracerConfig(appName)
	tc.ServiceVersion = version.Get().Short()
	tc.Environment = a.cfg.Environment
	tc.Endpoint = a.cfg.Tracing.Endpoint
	tc.Insecure = a.cfg.Tracing.Insecure
	tc.SampleRate = a.cfg.Tracing.SampleRate
	stopTracer, err := a.initTracer(ctx, tc)
	if err != nil {
		return err
	}
	a.shutdown = append(a.shutdown, stopTracer)

	if !a.cfg.Tracing.Metrics {
		return nil
	}
	mc := observability.DefaultMeterConfig(appName)
	mc.ServiceVersion = tc.ServiceVersion
	mc.Environment = tc.Environment
	mc.Endpoint = tc.Endpoint
	mc.Insecure = tc.Insecure
	stopMeter, err := a.initMeter(ctx, mc)
	if err != nil {
		return err
	}
	a.shutdown = append(a.shutdown, stopMeter)

	a.metrics, err = observability.NewMetrics(observability.Meter(appName))
	return err
}

// run adapts fn into a RunE that ends the command span and flushes telemetry
// whether or not fn fails.
func (a *app) run(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		err := fn(cmd)
		if cerr := a.close(context.WithoutCancel(cmd.Context())); err == nil {
			err = cerr
		}
		return err
	}
}

func (a *app) close(ctx context.Context) error {
	if a.span != nil {
		a.span.End()
		a.span = nil
	}
	var first error
	for _, fn := range a.shutdown {
		if err := fn(ctx); err != nil && first == nil {
			first = err
		}
	}
	a.shutdown = nil
	return first
}

// traceOptions attaches traversal metrics to traced stages when enabled.
func (a *app) traceOptions() []observability.TraceOption {
	if a.metrics == nil {
		return nil
	}
	return []observability.TraceOption{observability.WithMetrics(a.metrics)}
}
