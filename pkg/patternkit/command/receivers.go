package command

import (
	"fmt"
	"log/slog"
	"sync"
)

// Volume bounds.
const (
	VolumeOff  = 0
	VolumeHigh = 20
)

// TV is a receiver that can be switched on and off.
type TV struct {
	mu     sync.Mutex
	on     bool
	logger *slog.Logger
}

// NewTV creates a switched-off TV. A nil logger uses slog.Default().
func NewTV(logger *slog.Logger) *TV {
	if logger == nil {
		logger = slog.Default()
	}
	return &TV{logger: logger}
}

// On switches the TV on.
func (t *TV) On() string {
	t.mu.Lock()
	t.on = true
	t.mu.Unlock()

	const msg = "TV is on"
	t.logger.Info(msg)
	return msg
}

// Off switches the TV off.
func (t *TV) Off() string {
	t.mu.Lock()
	t.on = false
	t.mu.Unlock()

	const msg = "TV is off"
	t.logger.Info(msg)
	return msg
}

// IsOn reports whether the TV is on.
func (t *TV) IsOn() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.on
}

// Volume is a receiver holding a sound level in [VolumeOff, VolumeHigh].
type Volume struct {
	mu     sync.Mutex
	level  int
	logger *slog.Logger
}

// NewVolume creates a volume at VolumeOff. A nil logger uses slog.Default().
func NewVolume(logger *slog.Logger) *Volume {
	if logger == nil {
		logger = slog.Default()
	}
	return &Volume{level: VolumeOff, logger: logger}
}

// Raise increases the level by one, stopping at VolumeHigh.
func (v *Volume) Raise() string {
	v.mu.Lock()
	if v.level < VolumeHigh {
		v.level++
	}
	level := v.level
	v.mu.Unlock()
	return v.report(level)
}

// Drop decreases the level by one, stopping at VolumeOff.
func (v *Volume) Drop() string {
	v.mu.Lock()
	if v.level > VolumeOff {
		v.level--
	}
	level := v.level
	v.mu.Unlock()
	return v.report(level)
}

// Level returns the current level.
func (v *Volume) Level() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.level
}

func (v *Volume) report(level int) string {
	msg := fmt.Sprintf("volume level %d", level)
	v.logger.Info("volume changed", slog.Int("level", level))
	return msg
}
