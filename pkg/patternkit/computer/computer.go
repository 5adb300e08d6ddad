// Package computer is the singleton demo: every computer shares one operating
// system, built from the first name any computer launched with.
package computer

import (
	"context"
	"log/slog"
	"strings"

	perrors "github.com/randalmurphal/patternkit/pkg/patternkit/errors"
	"github.com/randalmurphal/patternkit/pkg/patternkit/singleton"
)

// OS is the shared operating system. Its name never changes.
type OS struct {
	name string
}

// Name returns the operating system name.
func (o *OS) Name() string {
	return o.name
}

// NewOS builds an OS. Blank names are rejected.
func NewOS(_ context.Context, name string) (*OS, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &perrors.ValidationError{Field: "name", Message: "must not be empty"}
	}
	return &OS{name: name}, nil
}

// NewRegistry returns the registry that owns the shared OS.
func NewRegistry(opts ...singleton.Option) *singleton.Registry[*OS] {
	return singleton.New(NewOS, append([]singleton.Option{singleton.WithName("os")}, opts...)...)
}

// Computer boots from the shared OS registry.
type Computer struct {
	os     *OS
	logger *slog.Logger
}

// New creates a computer that has not been launched. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Computer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Computer{logger: logger}
}

// Launch boots the computer. The requested name only matters if no OS exists yet.
func (c *Computer) Launch(ctx context.Context, reg *singleton.Registry[*OS], osName string) error {
	os, err := reg.GetOrCreateContext(ctx, osName)
	if err != nil {
		return err
	}
	c.os = os
	c.logger.Info("computer launched", slog.String("requested", osName), slog.String("os", os.Name()))
	return nil
}

// OS returns the launched OS, or nil before Launch succeeds.
func (c *Computer) OS() *OS {
	return c.os
}

// LaunchPair launches one computer on the calling goroutine and a second one
// from another goroutine, returning the OS name each ended up with.
func LaunchPair(ctx context.Context, reg *singleton.Registry[*OS], first, second string, logger *slog.Logger) ([2]string, error) {
	var names [2]string

	comp := New(logger)
	if err := comp.Launch(ctx, reg, first); err != nil {
		return names, err
	}
	names[0] = comp.OS().Name()

	errc := make(chan error, 1)
	go func() {
		comp2 := New(logger)
		if err := comp2.Launch(ctx, reg, second); err != nil {
			errc <- err
			return
		}
		names[1] = comp2.OS().Name()
		errc <- nil
	}()

	if err := <-errc; err != nil {
		return names, err
	}
	return names, nil
}
