package command

import "sync"

// Command is an undoable action. Execute and Undo return the receiver's
// message, or "" when nothing happened.
type Command interface {
	Execute() string
	Undo() string
	Name() string
}

// TVOnCommand switches a TV on and, on undo, off again. Repeated executes
// without an undo in between do nothing.
type TVOnCommand struct {
	tv *TV

	mu sync.Mutex
	on bool
}

// NewTVOnCommand binds the command to tv.
func NewTVOnCommand(tv *TV) *TVOnCommand {
	return &TVOnCommand{tv: tv}
}

// Execute implements Command.
func (c *TVOnCommand) Execute() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.on {
		return ""
	}
	c.on = true
	return c.tv.On()
}

// Undo implements Command.
func (c *TVOnCommand) Undo() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.on {
		return ""
	}
	c.on = false
	return c.tv.Off()
}

// Name implements Command.
func (c *TVOnCommand) Name() string { return "tv-on" }

// VolumeCommand raises the volume and, on undo, drops it.
type VolumeCommand struct {
	volume *Volume
}

// NewVolumeCommand binds the command to v.
func NewVolumeCommand(v *Volume) *VolumeCommand {
	return &VolumeCommand{volume: v}
}

// Execute implements Command.
func (c *VolumeCommand) Execute() string { return c.volume.Raise() }

// Undo implements Command.
func (c *VolumeCommand) Undo() string { return c.volume.Drop() }

// Name implements Command.
func (c *VolumeCommand) Name() string { return "volume-up" }

// NoCommand does nothing. Unassigned remote slots hold it.
type NoCommand struct{}

func (NoCommand) Execute() string { return "" }
func (NoCommand) Undo() string    { return "" }
func (NoCommand) Name() string    { return "none" }
