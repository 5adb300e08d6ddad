package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/randalmurphal/patternkit/pkg/patternkit/config"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	trace     bool

	settings config.Settings
	logger   *slog.Logger
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "patternkit",
		Short: "Run the design pattern demos",
		Long: `Run the design pattern demos.

Each subcommand runs one pattern and prints what happened. Logs go to stderr.

Examples:
  # Two computers racing to install an operating system
  patternkit singleton --os "Windows 9.1" --second-os "Windows 11.1"

  # Remote control presses journaled to SQLite
  patternkit command --journal ./patternkit.db --presses 0,1,1,u,u

  # Debug logs as JSON and spans on stderr
  patternkit observer --log-level debug --log-format json --trace`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml or json)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json")
	flags.BoolVar(&a.trace, "trace", false, "export spans to stderr")

	root.AddCommand(
		newSingletonCmd(a),
		newPrototypeCmd(),
		newBuilderCmd(),
		newFactoryCmd(a),
		newAbstractFactoryCmd(),
		newCommandCmd(a),
		newObserverCmd(a),
		newStrategyCmd(),
		newTemplateCmd(),
	)
	return root
}

// setup loads settings, applies flag overrides and builds the logger and
// tracer provider.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		settings.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		settings.LogFormat = a.logFormat
	}
	if flags.Changed("trace") {
		settings.Tracing = a.trace
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	a.settings = settings

	a.logger, err = newLogger(cmd.ErrOrStderr(), settings)
	if err != nil {
		return err
	}

	a.shutdown = func(context.Context) error { return nil }
	if settings.Tracing {
		provider, err := newTracerProvider(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		otel.SetTracerProvider(provider)
		a.shutdown = provider.Shutdown
	}
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracing: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, s config.Settings) (*slog.Logger, error) {
	level, err := s.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func newTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("create stdout exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "patternkit"),
		)),
	), nil
}

// printLines writes each line to the command's output.
func printLines(cmd *cobra.Command, lines ...string) {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
