package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/patternkit/pkg/patternkit/computer"
	perrors "github.com/randalmurphal/patternkit/pkg/patternkit/errors"
	"github.com/randalmurphal/patternkit/pkg/patternkit/observability"
	"github.com/randalmurphal/patternkit/pkg/patternkit/singleton"
)

func newSingletonCmd(a *app) *cobra.Command {
	var first, second string

	cmd := &cobra.Command{
		Use:   "singleton",
		Short: "Two computers share the first operating system installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := computer.NewRegistry(a.singletonOptions()...)
			names, err := computer.LaunchPair(cmd.Context(), reg, first, second, a.logger)
			if err != nil {
				return fmt.Errorf("launch computers: %w", err)
			}
			printLines(cmd,
				fmt.Sprintf("first computer: %s", names[0]),
				fmt.Sprintf("second computer: %s", names[1]),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "os", "Windows 9.1", "OS requested by the first computer")
	cmd.Flags().StringVar(&second, "second-os", "Windows 11.1", "OS requested by the second computer")
	return cmd
}

// singletonOptions maps settings onto registry options.
func (a *app) singletonOptions() []singleton.Option {
	opts := []singleton.Option{
		singleton.WithLogger(a.logger),
		singleton.WithMetrics(observability.NewMetricsRecorder()),
		singleton.WithSpans(observability.NewSpanManager()),
		singleton.WithWaitTimeout(a.settings.WaitTimeout),
	}
	if a.settings.RetryAttempts > 1 {
		opts = append(opts, singleton.WithRetry(perrors.NewRetryConfig(
			perrors.WithMaxAttempts(a.settings.RetryAttempts),
			perrors.WithInitialBackoff(a.settings.RetryBackoff),
		)))
	}
	return opts
}
